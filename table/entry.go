package table

import "fmt"

// Kind describes how a placeholder carries its argument.
type Kind uint8

const (
	// KindNoArgument placeholders expand without an argument (flags == 0).
	KindNoArgument Kind = iota
	// KindInlineOffset placeholders own a 256-value block; the argument is the
	// low byte of the code unit (flags != 0, length == 0).
	KindInlineOffset
	// KindMultiWord placeholders are followed by WordCount extra code units
	// holding the argument, low word first (flags != 0, length > 0).
	KindMultiWord
)

func (k Kind) String() string {
	switch k {
	case KindNoArgument:
		return "NoArgument"
	case KindInlineOffset:
		return "InlineOffset"
	case KindMultiWord:
		return "MultiWord"
	default:
		return "Unknown"
	}
}

// KindOf derives the kind from the raw flags and length fields of a record.
func KindOf(flags, length uint16) Kind {
	switch {
	case flags == 0:
		return KindNoArgument
	case length == 0:
		return KindInlineOffset
	default:
		return KindMultiWord
	}
}

// Entry is one placeholder of the table. It is immutable.
//
// On disk an entry is a 12-byte little-endian record:
//
//	0x00  u32  pointer to the null-terminated UTF-16LE label
//	0x04  u16  code value
//	0x06  u16  flags
//	0x08  u16  length (embedded word count)
//	0x0A  u16  reserved
type Entry struct {
	label    string
	value    uint16
	flags    uint16
	length   uint16
	reserved uint16
	kind     Kind
}

// NewEntry creates an entry from the raw record fields.
func NewEntry(label string, value, flags, length, reserved uint16) Entry {
	return Entry{
		label:    label,
		value:    value,
		flags:    flags,
		length:   length,
		reserved: reserved,
		kind:     KindOf(flags, length),
	}
}

// Label returns the placeholder name.
func (e Entry) Label() string { return e.label }

// Value returns the code value, or the base of the block for inline-offset entries.
func (e Entry) Value() uint16 { return e.value }

// Flags returns the raw flags field.
func (e Entry) Flags() uint16 { return e.flags }

// Length returns the raw embedded word count field.
func (e Entry) Length() uint16 { return e.length }

// Reserved returns the unused record field.
func (e Entry) Reserved() uint16 { return e.reserved }

// Kind returns how the placeholder carries its argument.
func (e Entry) Kind() Kind { return e.kind }

// WordCount returns the number of code units following a multi-word placeholder,
// and 0 for the other kinds.
func (e Entry) WordCount() int {
	if e.kind != KindMultiWord {
		return 0
	}

	return int(e.length)
}

func (e Entry) String() string {
	return fmt.Sprintf("%q=0x%04x(%s)", e.label, e.value, e.kind)
}
