package snapshot

import (
	"fmt"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/format"
)

const (
	// Magic identifies a snapshot.
	Magic = "CTSN"
	// Version is the only snapshot version this package reads and writes.
	Version uint8 = 1
	// HeaderSize is the size of the fixed header.
	HeaderSize = 16
	// ChecksumSize is the size of the trailing checksum.
	ChecksumSize = 8
)

// Header is the fixed-size header at the start of a snapshot.
type Header struct {
	Version       uint8                  // byte offset 4
	Compression   format.CompressionType // byte offset 5
	EntryCount    uint32                 // byte offset 8-11
	PayloadLength uint32                 // byte offset 12-15
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, HeaderSize)
	copy(b[0:4], Magic)
	b[4] = h.Version
	b[5] = uint8(h.Compression)
	engine.PutUint32(b[8:12], h.EntryCount)
	engine.PutUint32(b[12:16], h.PayloadLength)

	return b
}

// ParseHeader parses and validates the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: snapshot of %d bytes is shorter than its header", errs.ErrInvalidHeader, len(data))
	}
	if string(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: %q", errs.ErrInvalidMagic, data[0:4])
	}

	engine := endian.GetLittleEndianEngine()
	h := Header{
		Version:       data[4],
		Compression:   format.CompressionType(data[5]),
		EntryCount:    engine.Uint32(data[8:12]),
		PayloadLength: engine.Uint32(data[12:16]),
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: compression type 0x%x", errs.ErrInvalidHeader, uint8(h.Compression))
	}
	if engine.Uint16(data[6:8]) != 0 {
		return Header{}, fmt.Errorf("%w: reserved field is not zero", errs.ErrInvalidHeader)
	}

	return h, nil
}
