package table

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/internal/options"
	"github.com/arloliu/codetable/sir0"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

const (
	// RecordSize is the on-disk size of an entry record, label excluded.
	RecordSize = 12

	// The first leadingOffsets and the last trailingOffsets pointers of the
	// container belong to other structures.
	leadingOffsets  = 3
	trailingOffsets = 2
	minOffsetCount  = leadingOffsets + trailingOffsets

	labelChunkSize = 64
)

// Container is the view of a SIR0 container needed to load a table.
//
// *sir0.Container implements it.
type Container interface {
	io.ReaderAt
	// OffsetCount returns the number of pointer positions.
	OffsetCount() int
	// OffsetAt returns the pointer position at index i.
	OffsetAt(i int) (uint64, bool)
}

var _ Container = (*sir0.Container)(nil)

// Load reads the table entries referenced by the container's pointer offsets.
//
// Entries are read at the offsets with index in [3, OffsetCount()-2). Errors:
//   - errs.ErrNotEnoughOffsets if the container has fewer than 5 offsets
//   - errs.ErrMissingOffset if an offset in range can't be obtained
//   - errs.ErrEntryRead if a record or its label can't be read
//
// No partial table is returned on error.
func Load(c Container, opts ...LoadOption) (*Table, error) {
	cfg := newLoadConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	count := c.OffsetCount()
	if count < minOffsetCount {
		return nil, fmt.Errorf("%w: container has %d, need at least %d", errs.ErrNotEnoughOffsets, count, minOffsetCount)
	}

	reader := recordReader{src: c, engine: endian.GetLittleEndianEngine()}
	entries := make([]Entry, 0, count-minOffsetCount)
	for i := leadingOffsets; i < count-trailingOffsets; i++ {
		off, ok := c.OffsetAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: pointer %d", errs.ErrMissingOffset, i)
		}

		entry, err := reader.read(off)
		if err != nil {
			return nil, fmt.Errorf("%w: pointer %d at 0x%x: %w", errs.ErrEntryRead, i, off, err)
		}
		entries = append(entries, entry)
	}

	t := &Table{entries: entries}
	if err := cfg.check(t); err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Int("offsets", count).
		Int("entries", len(entries)).
		Msg("code table loaded")

	return t, nil
}

// Parse parses a SIR0 container from data and loads the table it holds.
// Container failures are wrapped with errs.ErrContainerDecode.
func Parse(data []byte, opts ...LoadOption) (*Table, error) {
	c, err := sir0.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrContainerDecode, err)
	}

	return Load(c, opts...)
}

// Read reads a whole code_table.bin from r and loads it.
func Read(r io.Reader, opts ...LoadOption) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrContainerDecode, err)
	}

	return Parse(data, opts...)
}

func (cfg *loadConfig) check(t *Table) error {
	if !cfg.strict && cfg.logger.GetLevel() == zerolog.Disabled {
		return nil
	}

	err := t.Validate()
	if err == nil {
		return nil
	}
	if cfg.strict {
		return err
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, violation := range merr.Errors {
			cfg.logger.Warn().Err(violation).Msg("code table violation")
		}
	}

	return nil
}

type recordReader struct {
	src    io.ReaderAt
	engine endian.EndianEngine
}

func (r recordReader) read(off uint64) (Entry, error) {
	var rec [RecordSize]byte
	if _, err := r.src.ReadAt(rec[:], int64(off)); err != nil { //nolint:gosec
		if errors.Is(err, io.EOF) {
			return Entry{}, fmt.Errorf("%w: record needs %d bytes", errs.ErrTruncatedRecord, RecordSize)
		}

		return Entry{}, err
	}

	labelPtr := r.engine.Uint32(rec[0:4])
	label, err := r.readLabel(int64(labelPtr))
	if err != nil {
		return Entry{}, fmt.Errorf("label at 0x%x: %w", labelPtr, err)
	}

	return NewEntry(
		label,
		r.engine.Uint16(rec[4:6]),
		r.engine.Uint16(rec[6:8]),
		r.engine.Uint16(rec[8:10]),
		r.engine.Uint16(rec[10:12]),
	), nil
}

// readLabel reads a null-terminated UTF-16LE string.
func (r recordReader) readLabel(off int64) (string, error) {
	var units []uint16
	buf := make([]byte, labelChunkSize)

	for {
		n, err := r.src.ReadAt(buf, off)
		n -= n % 2
		for i := 0; i < n; i += 2 {
			u := r.engine.Uint16(buf[i:])
			if u == 0 {
				return decodeLabel(units)
			}
			units = append(units, u)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: label is not null-terminated", errs.ErrTruncatedRecord)
			}

			return "", err
		}
		off += int64(n)
	}
}

// decodeLabel decodes UTF-16 strictly: unpaired surrogates are rejected.
func decodeLabel(units []uint16) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if !utf16.IsSurrogate(u) {
			sb.WriteRune(u)
			continue
		}

		if i+1 >= len(units) {
			return "", fmt.Errorf("%w: dangling surrogate 0x%04x", errs.ErrInvalidLabel, units[i])
		}
		r := utf16.DecodeRune(u, rune(units[i+1]))
		if r == unicode.ReplacementChar {
			return "", fmt.Errorf("%w: surrogate pair 0x%04x 0x%04x", errs.ErrInvalidLabel, units[i], units[i+1])
		}
		sb.WriteRune(r)
		i++
	}

	return sb.String(), nil
}
