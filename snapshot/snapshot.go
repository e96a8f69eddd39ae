package snapshot

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/codetable/compress"
	"github.com/arloliu/codetable/encoding"
	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/format"
	"github.com/arloliu/codetable/internal/hash"
	"github.com/arloliu/codetable/internal/options"
	"github.com/arloliu/codetable/internal/pool"
	"github.com/arloliu/codetable/table"
)

// minRecordSize is a record with an empty label: length byte plus four uint16 fields.
const minRecordSize = 1 + 4*2

// Encode serializes t into a snapshot.
//
// Labels longer than 255 bytes fail with errs.ErrLabelTooLong.
func Encode(t *table.Table, opts ...EncodeOption) ([]byte, error) {
	cfg := &encoderConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	enc := encoding.NewVarStringEncoder(endian.GetLittleEndianEngine())
	defer enc.Reset()

	for i, e := range t.All() {
		if err := enc.Write(e.Label()); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		enc.WriteUint16(e.Value())
		enc.WriteUint16(e.Flags())
		enc.WriteUint16(e.Length())
		enc.WriteUint16(e.Reserved())
	}

	payload := enc.Bytes()
	checksum := hash.Sum(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}
	if len(compressed) > math.MaxUint32 {
		return nil, fmt.Errorf("snapshot payload of %d bytes is too large", len(compressed))
	}

	h := Header{
		Version:       Version,
		Compression:   cfg.compression,
		EntryCount:    uint32(t.Len()),         //nolint:gosec
		PayloadLength: uint32(len(compressed)), //nolint:gosec
	}

	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	buf.Grow(HeaderSize + len(compressed) + ChecksumSize)
	buf.MustWrite(h.Bytes())
	buf.MustWrite(compressed)
	buf.MustWrite(endian.GetLittleEndianEngine().AppendUint64(nil, checksum))

	return buf.Clone(), nil
}

// Decode reads a snapshot produced by Encode.
//
// Errors:
//   - errs.ErrInvalidMagic, errs.ErrUnsupportedVersion or errs.ErrInvalidHeader for a bad header
//   - errs.ErrChecksumMismatch if the payload does not match its checksum
//   - errs.ErrInvalidPayload if the payload is truncated, has trailing bytes or holds invalid labels
func Decode(data []byte) (*table.Table, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	end := uint64(HeaderSize) + uint64(h.PayloadLength)
	if end+ChecksumSize != uint64(len(data)) {
		return nil, fmt.Errorf("%w: snapshot is %d bytes, header describes %d", errs.ErrInvalidPayload, len(data), end+ChecksumSize)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:end])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	engine := endian.GetLittleEndianEngine()
	want := engine.Uint64(data[end:])
	if got := hash.Sum(payload); got != want {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, got, want)
	}

	if uint64(h.EntryCount)*minRecordSize > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: %d entries can't fit in %d bytes", errs.ErrInvalidPayload, h.EntryCount, len(payload))
	}

	dec := encoding.NewVarStringDecoder(payload, engine)
	entries := make([]table.Entry, 0, h.EntryCount)
	for i := range int(h.EntryCount) {
		e, err := readEntry(dec)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	if dec.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, dec.Remaining())
	}

	return table.New(entries), nil
}

func readEntry(dec *encoding.VarStringDecoder) (table.Entry, error) {
	label, err := dec.Read()
	if err != nil {
		return table.Entry{}, err
	}
	if !utf8.ValidString(label) {
		return table.Entry{}, fmt.Errorf("%w: label %q is not valid UTF-8", errs.ErrInvalidPayload, label)
	}

	var fields [4]uint16
	for i := range fields {
		if fields[i], err = dec.ReadUint16(); err != nil {
			return table.Entry{}, err
		}
	}

	return table.NewEntry(label, fields[0], fields[1], fields[2], fields[3]), nil
}
