package encoding

import (
	"fmt"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/internal/pool"
)

// MaxTextLength is the maximum length in bytes of an encoded string.
// Since uint8 can represent 0-255, the maximum string length is 255 bytes.
const MaxTextLength = 255

// VarStringEncoder encodes length-prefixed strings and fixed-width integers.
//
// Each string is encoded as:
//   - 1 byte: length (0-255)
//   - N bytes: string data (UTF-8)
type VarStringEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	tmp    [2]byte
}

// NewVarStringEncoder creates a new encoder using the specified endian engine.
//
// The encoder holds a pooled buffer until Reset is called.
func NewVarStringEncoder(engine endian.EndianEngine) *VarStringEncoder {
	return &VarStringEncoder{
		engine: engine,
		buf:    pool.GetContainerBuffer(),
	}
}

// Write encodes a single string with uint8 length prefix.
//
// Returns errs.ErrLabelTooLong if the string exceeds MaxTextLength bytes.
func (e *VarStringEncoder) Write(text string) error {
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrLabelTooLong, len(text), MaxTextLength)
	}

	e.buf.Grow(1 + len(text))
	e.buf.MustWrite([]byte{uint8(len(text))}) //nolint:gosec
	e.buf.MustWrite([]byte(text))

	return nil
}

// WriteUint16 encodes v as two bytes in the encoder's byte order.
func (e *VarStringEncoder) WriteUint16(v uint16) {
	e.engine.PutUint16(e.tmp[:], v)
	e.buf.MustWrite(e.tmp[:])
}

// Bytes returns the encoded data.
//
// The returned slice shares the underlying buffer with the encoder and is only
// valid until Reset.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Reset returns the buffer to the pool.
//
// After calling Reset, the encoder should not be used again.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutContainerBuffer(e.buf)
		e.buf = nil
	}
}

// VarStringDecoder reads fields written by VarStringEncoder.
type VarStringDecoder struct {
	data   []byte
	engine endian.EndianEngine
	pos    int
}

// NewVarStringDecoder creates a decoder over data. The data is not copied.
func NewVarStringDecoder(data []byte, engine endian.EndianEngine) *VarStringDecoder {
	return &VarStringDecoder{data: data, engine: engine}
}

// Read decodes the next length-prefixed string.
func (d *VarStringDecoder) Read() (string, error) {
	if d.pos >= len(d.data) {
		return "", fmt.Errorf("%w: missing string length at byte %d", errs.ErrInvalidPayload, d.pos)
	}

	n := int(d.data[d.pos])
	start := d.pos + 1
	if start+n > len(d.data) {
		return "", fmt.Errorf("%w: string of %d bytes at byte %d overruns payload", errs.ErrInvalidPayload, n, d.pos)
	}
	d.pos = start + n

	return string(d.data[start:d.pos]), nil
}

// ReadUint16 decodes the next two-byte integer.
func (d *VarStringDecoder) ReadUint16() (uint16, error) {
	if d.pos+2 > len(d.data) {
		return 0, fmt.Errorf("%w: truncated uint16 at byte %d", errs.ErrInvalidPayload, d.pos)
	}
	v := d.engine.Uint16(d.data[d.pos:])
	d.pos += 2

	return v, nil
}

// Remaining returns the number of unread bytes.
func (d *VarStringDecoder) Remaining() int {
	return len(d.data) - d.pos
}
