// Package codetable converts game strings between their binary form and
// readable annotated text.
//
// Strings in the game data are sequences of 16-bit code units. Some units are
// control codes described by a code table (code_table.bin): they name a
// placeholder such as a character name, a text color or an embedded number.
// Decoding renders control codes as [name] or [name:value] and escapes literal
// brackets; encoding parses that text back into code units.
//
// # Basic Usage
//
//	data, _ := os.ReadFile("code_table.bin")
//	codec, err := codetable.Open(data)
//	if err != nil {
//		return err
//	}
//
//	text, err := codec.DecodeBytes(raw)   // "[hero] found [value:100] coins"
//	raw, err = codec.EncodeBytes(text)
//
// Open accepts either a SIR0 code_table.bin or a snapshot written by
// Codec.Snapshot, which loads faster and can be compressed.
//
// # Package Structure
//
// This package wires together the lower-level packages:
//   - table: entries, indices, loading and writing code_table.bin
//   - placeholder: the text decoder and encoder
//   - sir0: the container format
//   - snapshot: compressed table caches
package codetable

import (
	"bytes"

	"github.com/arloliu/codetable/internal/options"
	"github.com/arloliu/codetable/placeholder"
	"github.com/arloliu/codetable/snapshot"
	"github.com/arloliu/codetable/table"
	"github.com/rs/zerolog"
)

// Codec decodes and encodes strings with one code table.
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	tbl     *table.Table
	decoder *placeholder.Decoder
	encoder *placeholder.Encoder
}

type openConfig struct {
	logger zerolog.Logger
	strict bool
}

// Option configures Open.
type Option = options.Option[*openConfig]

// WithLogger sets the logger used while loading the table.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(c *openConfig) {
		c.logger = logger
	})
}

// WithStrict makes Open fail when the table breaks an invariant such as a duplicate label.
func WithStrict(strict bool) Option {
	return options.NoError(func(c *openConfig) {
		c.strict = strict
	})
}

// Open loads a code table from data and returns a Codec for it.
//
// data is either a SIR0 code_table.bin or a snapshot.
func Open(data []byte, opts ...Option) (*Codec, error) {
	cfg := &openConfig{logger: zerolog.Nop()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if bytes.HasPrefix(data, []byte(snapshot.Magic)) {
		tbl, err := snapshot.Decode(data)
		if err != nil {
			return nil, err
		}
		if cfg.strict {
			if err := tbl.Validate(); err != nil {
				return nil, err
			}
		}
		cfg.logger.Debug().Int("entries", tbl.Len()).Msg("code table loaded from snapshot")

		return New(tbl), nil
	}

	tbl, err := table.Parse(data, table.WithLogger(cfg.logger), table.WithStrict(cfg.strict))
	if err != nil {
		return nil, err
	}

	return New(tbl), nil
}

// New returns a Codec for an already loaded table.
func New(tbl *table.Table) *Codec {
	return &Codec{
		tbl:     tbl,
		decoder: placeholder.NewDecoder(tbl.CodeIndex()),
		encoder: placeholder.NewEncoder(tbl.LabelIndex()),
	}
}

// Table returns the code table.
func (c *Codec) Table() *table.Table {
	return c.tbl
}

// Decode converts code units to annotated text.
// Errors are *placeholder.DecodeError values.
func (c *Codec) Decode(units []uint16) (string, error) {
	return c.decoder.Decode(units)
}

// DecodeBytes decodes a little-endian byte string.
func (c *Codec) DecodeBytes(data []byte) (string, error) {
	return c.decoder.DecodeBytes(data)
}

// Encode converts annotated text to code units.
// Errors are *placeholder.EncodeError values.
func (c *Codec) Encode(text string) ([]uint16, error) {
	return c.encoder.Encode(text)
}

// EncodeBytes encodes text to a little-endian byte string.
func (c *Codec) EncodeBytes(text string) ([]byte, error) {
	return c.encoder.EncodeBytes(text)
}

// Snapshot serializes the table so a later Open can skip SIR0 parsing.
func (c *Codec) Snapshot(opts ...snapshot.EncodeOption) ([]byte, error) {
	return snapshot.Encode(c.tbl, opts...)
}
