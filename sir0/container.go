package sir0

import (
	"fmt"
	"io"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/errs"
)

const (
	// Magic identifies a SIR0 container.
	Magic = "SIR0"
	// HeaderSize is the size of the fixed container header.
	HeaderSize = 16
	// PointerSize is the size of a pointer field.
	PointerSize = 4
)

// Container is a parsed SIR0 container.
//
// A Container is immutable and safe for concurrent use. It keeps a reference to
// the data it was parsed from; callers must not modify that slice afterwards.
type Container struct {
	data          []byte
	contentOffset uint32
	listOffset    uint32
	offsets       []uint64
}

var _ io.ReaderAt = (*Container)(nil)

// Parse parses a SIR0 container from data.
//
// The header is validated, the pointer offset list is decoded and every
// recorded pointer position must lie inside the data.
func Parse(data []byte) (*Container, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeader, HeaderSize, len(data))
	}

	if string(data[:4]) != Magic {
		return nil, fmt.Errorf("%w: got %q", errs.ErrInvalidMagic, data[:4])
	}

	engine := endian.GetLittleEndianEngine()
	c := &Container{
		data:          data,
		contentOffset: engine.Uint32(data[4:8]),
		listOffset:    engine.Uint32(data[8:12]),
	}

	size := uint64(len(data))
	if uint64(c.contentOffset) >= size {
		return nil, fmt.Errorf("%w: content pointer 0x%x beyond size 0x%x", errs.ErrInvalidHeader, c.contentOffset, size)
	}
	if c.listOffset < HeaderSize || uint64(c.listOffset) >= size {
		return nil, fmt.Errorf("%w: offset list pointer 0x%x outside [0x%x, 0x%x)",
			errs.ErrInvalidHeader, c.listOffset, HeaderSize, size)
	}

	offsets, _, err := DecodeOffsets(data[c.listOffset:])
	if err != nil {
		return nil, err
	}

	for i, off := range offsets {
		if off+PointerSize > size {
			return nil, fmt.Errorf("%w: pointer %d at 0x%x, size 0x%x", errs.ErrOffsetOutOfRange, i, off, size)
		}
	}
	c.offsets = offsets

	return c, nil
}

// OffsetCount returns the number of pointer positions in the offset list.
func (c *Container) OffsetCount() int {
	return len(c.offsets)
}

// OffsetAt returns the pointer position at index i.
func (c *Container) OffsetAt(i int) (uint64, bool) {
	if i < 0 || i >= len(c.offsets) {
		return 0, false
	}

	return c.offsets[i], true
}

// Offsets returns a copy of all pointer positions.
func (c *Container) Offsets() []uint64 {
	out := make([]uint64, len(c.offsets))
	copy(out, c.offsets)

	return out
}

// ContentOffset returns the position of the file-specific content header.
func (c *Container) ContentOffset() uint64 {
	return uint64(c.contentOffset)
}

// Size returns the size of the container in bytes.
func (c *Container) Size() int64 {
	return int64(len(c.data))
}

// Bytes returns the raw container data.
func (c *Container) Bytes() []byte {
	return c.data
}

// ReadAt implements io.ReaderAt over the container data.
func (c *Container) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", errs.ErrOffsetOutOfRange, off)
	}
	if off >= int64(len(c.data)) {
		return 0, io.EOF
	}

	n := copy(p, c.data[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}
