package placeholder

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/table"
)

const (
	maxInlineArgument = 0xFF
	partSeparator     = ":"
)

// Encoder turns annotated text into code units.
type Encoder struct {
	index  *table.LabelIndex
	engine endian.EndianEngine
}

// NewEncoder creates an encoder that resolves placeholders with index.
func NewEncoder(index *table.LabelIndex) *Encoder {
	return &Encoder{
		index:  index,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Encode converts annotated text to code units.
//
// The returned error is an *EncodeError; use errors.Is with the encode sentinel
// errors to find its kind. Invalid UTF-8 in text is encoded as U+FFFD.
func (e *Encoder) Encode(text string) ([]uint16, error) {
	out := make([]uint16, 0, len(text))

	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])

		switch r {
		case '\\':
			if pos+size >= len(text) {
				return nil, &EncodeError{Err: ErrUnfinishedEscape, Pos: pos}
			}
			next, nsize := utf8.DecodeRuneInString(text[pos+size:])
			if next != '[' && next != '\\' {
				return nil, &EncodeError{Err: ErrUselessEscape, Pos: pos, Char: next}
			}
			out = append(out, uint16(next))
			pos += size + nsize

		case '[':
			end := strings.IndexByte(text[pos+1:], ']')
			if end < 0 {
				return nil, &EncodeError{Err: ErrUnclosedPlaceholder, Pos: pos}
			}

			var err error
			out, err = e.appendPlaceholder(out, text[pos+1:pos+1+end], pos)
			if err != nil {
				return nil, err
			}
			pos += end + 2

		default:
			out = utf16.AppendRune(out, r)
			pos += size
		}
	}

	return out, nil
}

// EncodeBytes encodes text and returns the code units as little-endian bytes.
func (e *Encoder) EncodeBytes(text string) ([]byte, error) {
	units, err := e.Encode(text)
	if err != nil {
		return nil, err
	}

	return endian.AppendCodeUnits(e.engine, nil, units), nil
}

// appendPlaceholder encodes the body of a [..] placeholder that starts at byte pos.
func (e *Encoder) appendPlaceholder(out []uint16, body string, pos int) ([]uint16, error) {
	if body == "" {
		return nil, &EncodeError{Err: ErrEmptyPlaceholder, Pos: pos}
	}

	parts := strings.SplitAfter(body, partSeparator)
	if len(parts) > 2 {
		return nil, &EncodeError{Err: ErrPlaceholderTooManyParts, Pos: pos, Parts: parts}
	}

	directive := parts[0]
	if len(parts) == 1 {
		entry, ok := e.lookupDirective(directive)
		if !ok {
			return nil, &EncodeError{Err: ErrUnknownPlaceholder, Pos: pos, Name: directive}
		}

		return append(out, entry.Value()), nil
	}

	value := parts[1]
	if hardcoded, ok := e.index.Lookup(directive + value); ok {
		return append(out, hardcoded.Value()), nil
	}

	entry, ok := e.lookupDirective(directive)
	if !ok {
		return nil, &EncodeError{Err: ErrUnknownPlaceholder, Pos: pos, Name: directive}
	}

	arg, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, &EncodeError{Err: ErrInvalidValue, Pos: pos, Name: directive, Value: value, Cause: err}
	}

	// Entries without trailing words take the argument as an offset from their
	// own value, including no-argument entries.
	if entry.Kind() != table.KindMultiWord {
		if arg > maxInlineArgument {
			return nil, &EncodeError{
				Err: ErrArgumentOutOfRange, Pos: pos, Name: directive, Value: value, Limit: maxInlineArgument,
			}
		}

		return append(out, entry.Value()+uint16(arg)), nil
	}

	words := entry.WordCount()
	if limit := wordLimit(words); arg > limit {
		return nil, &EncodeError{Err: ErrArgumentOutOfRange, Pos: pos, Name: directive, Value: value, Limit: limit}
	}

	out = append(out, entry.Value())
	for j := range words {
		out = append(out, uint16(arg>>(16*j)))
	}

	return out, nil
}

// lookupDirective resolves a directive, retrying without its trailing ':'.
func (e *Encoder) lookupDirective(directive string) (table.Entry, bool) {
	if entry, ok := e.index.Lookup(directive); ok {
		return entry, true
	}

	if trimmed, found := strings.CutSuffix(directive, partSeparator); found {
		return e.index.Lookup(trimmed)
	}

	return table.Entry{}, false
}

// wordLimit returns the largest argument that fits in words code units.
func wordLimit(words int) uint64 {
	if words >= 2 {
		return 1<<32 - 1
	}

	return 1<<(16*words) - 1
}
