package placeholder

import (
	"errors"
	"fmt"
	"strings"
)

// Decode errors.
var (
	// ErrIncompleteEmbeddedData is returned when a multi-word placeholder is cut
	// short by the end of the input.
	ErrIncompleteEmbeddedData = errors.New("missing code units at the end of the string to decode the value of a placeholder")
	// ErrInvalidSurrogatePair is returned for two code units that don't form a UTF-16 character.
	ErrInvalidSurrogatePair = errors.New("invalid UTF-16 surrogate pair")
	// ErrTrailingHighSurrogate is returned when the input ends with half of a
	// surrogate pair. Despite the name it also covers a dangling low surrogate
	// as the final code unit.
	ErrTrailingHighSurrogate = errors.New("the final code unit is an unpaired UTF-16 surrogate")
)

// Encode errors.
var (
	ErrUselessEscape           = errors.New("character escaped, but it doesn't need to be")
	ErrUnfinishedEscape        = errors.New("the string ends with an unescaped \\")
	ErrUnclosedPlaceholder     = errors.New("the string ends with an unclosed placeholder")
	ErrEmptyPlaceholder        = errors.New("empty placeholder []")
	ErrPlaceholderTooManyParts = errors.New("placeholder has too many parts")
	ErrUnknownPlaceholder      = errors.New("unknown placeholder")
	ErrInvalidValue            = errors.New("invalid placeholder value")
	ErrArgumentOutOfRange      = errors.New("placeholder argument out of range")
)

// DecodeError describes a failed Decode call.
type DecodeError struct {
	// Err is one of the decode sentinel errors.
	Err error
	// Pos is the index of the code unit that starts the failing construct.
	Pos int
	// Units holds the offending code units.
	Units []uint16
	// Partial is the text decoded before the failure.
	Partial string
}

func (e *DecodeError) Error() string {
	units := make([]string, len(e.Units))
	for i, u := range e.Units {
		units[i] = fmt.Sprintf("0x%04x", u)
	}

	return fmt.Sprintf("%v at code unit %d [%s] (partially decoded string: %q)",
		e.Err, e.Pos, strings.Join(units, " "), e.Partial)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError describes a failed Encode call.
type EncodeError struct {
	// Err is one of the encode sentinel errors.
	Err error
	// Pos is the byte offset in the input of the escape or placeholder that failed.
	Pos int
	// Char is the escaped character for ErrUselessEscape.
	Char rune
	// Name is the placeholder directive, when one was parsed.
	Name string
	// Parts holds the placeholder parts for ErrPlaceholderTooManyParts.
	Parts []string
	// Value is the raw argument text, when one was given.
	Value string
	// Limit is the largest accepted argument for ErrArgumentOutOfRange.
	Limit uint64
	// Cause is the underlying parse error for ErrInvalidValue.
	Cause error
}

func (e *EncodeError) Error() string {
	var detail string
	switch {
	case errors.Is(e.Err, ErrUselessEscape):
		detail = fmt.Sprintf("%q; write \\\\ to display \\", e.Char)
	case errors.Is(e.Err, ErrEmptyPlaceholder):
		detail = "write \\[] to display []"
	case errors.Is(e.Err, ErrPlaceholderTooManyParts):
		detail = fmt.Sprintf("parts are %q", e.Parts)
	case errors.Is(e.Err, ErrUnknownPlaceholder):
		detail = fmt.Sprintf("%q", e.Name)
	case errors.Is(e.Err, ErrInvalidValue):
		detail = fmt.Sprintf("%q for %q is neither hardcoded nor a base 10 uint32: %v", e.Value, e.Name, e.Cause)
	case errors.Is(e.Err, ErrArgumentOutOfRange):
		detail = fmt.Sprintf("%s for %q, must be at most %d", e.Value, e.Name, e.Limit)
	}

	if detail == "" {
		return fmt.Sprintf("%v at byte %d", e.Err, e.Pos)
	}

	return fmt.Sprintf("%v at byte %d: %s", e.Err, e.Pos, detail)
}

func (e *EncodeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}

	return []error{e.Err}
}
