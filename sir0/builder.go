package sir0

import (
	"fmt"
	"slices"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/internal/pool"
)

// Builder writes a SIR0 container.
//
// The payload is appended after the 16-byte header. Every pointer written with
// WritePointer is recorded so Finish can emit the pointer offset list.
//
// Note: Builder is NOT thread-safe and can't be reused after Finish.
type Builder struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	pointers []uint64
}

// NewBuilder creates a builder with room reserved for the header.
func NewBuilder() *Builder {
	b := &Builder{
		buf:    pool.GetContainerBuffer(),
		engine: endian.GetLittleEndianEngine(),
	}
	b.buf.MustWrite(make([]byte, HeaderSize))

	return b
}

// Len returns the current write position.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Write appends raw bytes.
func (b *Builder) Write(p []byte) {
	b.buf.MustWrite(p)
}

// WriteUint16 appends a little-endian uint16.
func (b *Builder) WriteUint16(v uint16) {
	b.buf.B = b.engine.AppendUint16(b.buf.B, v)
}

// WriteUint32 appends a little-endian uint32 that is not a pointer.
func (b *Builder) WriteUint32(v uint32) {
	b.buf.B = b.engine.AppendUint32(b.buf.B, v)
}

// WritePointer appends a pointer to target and records its position.
func (b *Builder) WritePointer(target uint32) {
	b.pointers = append(b.pointers, uint64(b.buf.Len()))
	b.WriteUint32(target)
}

// PatchPointer overwrites the pointer written at pos with target.
// pos must have been recorded by WritePointer.
func (b *Builder) PatchPointer(pos int, target uint32) error {
	if !slices.Contains(b.pointers, uint64(pos)) {
		return fmt.Errorf("%w: no pointer recorded at 0x%x", errs.ErrOffsetOutOfRange, pos)
	}
	b.engine.PutUint32(b.buf.B[pos:pos+PointerSize], target)

	return nil
}

// Align pads the payload with zero bytes to a multiple of n.
func (b *Builder) Align(n int) {
	b.buf.Align(n)
}

// Finish writes the header and the pointer offset list and returns the
// container bytes. contentOffset is stored as the header's content pointer.
//
// The builder's buffer is returned to the pool; the builder must not be used afterwards.
func (b *Builder) Finish(contentOffset uint32) ([]byte, error) {
	defer b.Release()

	if int(contentOffset) >= b.buf.Len() {
		return nil, fmt.Errorf("%w: content pointer 0x%x beyond payload size 0x%x",
			errs.ErrInvalidHeader, contentOffset, b.buf.Len())
	}

	sorted := slices.Clone(b.pointers)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("%w: 0x%x", errs.ErrDuplicatePointer, sorted[i])
		}
	}

	b.Align(PointerSize)
	listOffset := uint32(b.buf.Len()) //nolint:gosec

	offsets := make([]uint64, 0, len(sorted)+2)
	offsets = append(offsets, 4, 8)
	offsets = append(offsets, sorted...)

	var err error
	b.buf.B, err = AppendOffsets(b.buf.B, offsets)
	if err != nil {
		return nil, err
	}
	b.Align(HeaderSize)

	header := b.buf.B[:HeaderSize]
	copy(header, Magic)
	b.engine.PutUint32(header[4:8], contentOffset)
	b.engine.PutUint32(header[8:12], listOffset)
	b.engine.PutUint32(header[12:16], 0)

	return b.buf.Clone(), nil
}

// Release returns the buffer to the pool without finishing the container.
// It is a no-op after Finish.
func (b *Builder) Release() {
	if b.buf != nil {
		pool.PutContainerBuffer(b.buf)
		b.buf = nil
	}
}
