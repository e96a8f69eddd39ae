package placeholder

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/table"
)

// Decoder turns code units into annotated text.
type Decoder struct {
	index  *table.CodeIndex
	engine endian.EndianEngine
}

// NewDecoder creates a decoder that resolves placeholders with index.
func NewDecoder(index *table.CodeIndex) *Decoder {
	return &Decoder{
		index:  index,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Decode converts units to annotated text.
//
// Each unit is matched against the code index, first exactly and then by its
// 256-value block. Unmatched units are literal UTF-16, with [ and \ escaped.
// The returned error is a *DecodeError wrapping ErrIncompleteEmbeddedData,
// ErrInvalidSurrogatePair or ErrTrailingHighSurrogate.
func (d *Decoder) Decode(units []uint16) (string, error) {
	var sb strings.Builder
	sb.Grow(len(units))

	for i := 0; i < len(units); i++ {
		unit := units[i]

		if entry, offset, ok := d.index.Match(unit); ok {
			var arg string
			switch entry.Kind() {
			case table.KindInlineOffset:
				arg = strconv.FormatUint(uint64(offset), 10)
			case table.KindMultiWord:
				n := entry.WordCount()
				if len(units)-i-1 < n {
					return "", &DecodeError{
						Err:     ErrIncompleteEmbeddedData,
						Pos:     i,
						Units:   cloneUnits(units[i:]),
						Partial: sb.String(),
					}
				}
				arg = strconv.FormatUint(uint64(joinWords(units[i+1:i+1+n])), 10)
				i += n
			}

			sb.WriteByte('[')
			sb.WriteString(entry.Label())
			sb.WriteString(arg)
			sb.WriteByte(']')

			continue
		}

		switch {
		case unit == '[':
			sb.WriteString(`\[`)
		case unit == '\\':
			sb.WriteString(`\\`)
		case !utf16.IsSurrogate(rune(unit)):
			sb.WriteRune(rune(unit))
		case i+1 >= len(units):
			return "", &DecodeError{
				Err:     ErrTrailingHighSurrogate,
				Pos:     i,
				Units:   []uint16{unit},
				Partial: sb.String(),
			}
		default:
			r := utf16.DecodeRune(rune(unit), rune(units[i+1]))
			if r == unicode.ReplacementChar {
				return "", &DecodeError{
					Err:     ErrInvalidSurrogatePair,
					Pos:     i,
					Units:   []uint16{unit, units[i+1]},
					Partial: sb.String(),
				}
			}
			sb.WriteRune(r)
			i++
		}
	}

	return sb.String(), nil
}

// DecodeBytes decodes a little-endian byte string.
// It fails with errs.ErrOddByteLength if data has an odd length.
func (d *Decoder) DecodeBytes(data []byte) (string, error) {
	units, err := endian.CodeUnits(d.engine, data)
	if err != nil {
		return "", err
	}

	return d.Decode(units)
}

// joinWords packs words low word first. Words past the second don't fit in a
// uint32 and are dropped.
func joinWords(words []uint16) uint32 {
	var v uint32
	for j, w := range words {
		if j >= 2 {
			break
		}
		v |= uint32(w) << (16 * j)
	}

	return v
}

func cloneUnits(units []uint16) []uint16 {
	out := make([]uint16, len(units))
	copy(out, units)

	return out
}
