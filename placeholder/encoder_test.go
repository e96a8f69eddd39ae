package placeholder

import (
	"strconv"
	"testing"

	"github.com/arloliu/codetable/table"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	_, enc := newCodec()

	tests := []struct {
		name string
		text string
		want []uint16
	}{
		{"empty", "", []uint16{}},
		{"literal", "Hello", utf16Units("Hello")},
		{"escaped bracket", `\[`, []uint16{'['}},
		{"escaped backslash", `\\`, []uint16{'\\'}},
		{"closing bracket", "a]", []uint16{'a', ']'}},
		{"no-argument placeholder", "Hi [hero]!", []uint16{'H', 'i', ' ', 0xE100, '!'}},
		{"hardcoded value", "[color:red]", []uint16{0x8105}},
		{"inline offset", "[color:7]", []uint16{0x8107}},
		{"inline offset max", "[color:255]", []uint16{0x81FF}},
		{"directive without value", "[color:]", []uint16{0x8100}},
		{"directive used bare", "[color:]x", []uint16{0x8100, 'x'}},
		{"label without colon", "[color]", []uint16{0x8200}},
		{"multi-word", "[value:70000]", []uint16{0xA000, 0x1170, 0x0001}},
		{"multi-word zero", "[value:0]", []uint16{0xA000, 0, 0}},
		{"multi-word max", "[value:4294967295]", []uint16{0xA000, 0xFFFF, 0xFFFF}},
		{"single word", "[item:65535]", []uint16{0xA100, 0xFFFF}},
		{"three words", "[wide:131073]", []uint16{0xA200, 1, 2, 0}},
		{"surrogate pair", "😀", []uint16{0xD83D, 0xDE00}},
		{"invalid utf-8", "a\xffb", []uint16{'a', 0xFFFD, 'b'}},
		{"escape inside text", `x\[hero]`, []uint16{'x', '[', 'h', 'e', 'r', 'o', ']'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Encode(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncoder_TrailingColonFallback(t *testing.T) {
	enc := NewEncoder(table.New([]table.Entry{
		table.NewEntry("color", 0x0100, 1, 0, 0),
	}).LabelIndex())

	got, err := enc.Encode("[color:5]")
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0105}, got)
}

func TestEncoder_Encode_Errors(t *testing.T) {
	_, enc := newCodec()

	tests := []struct {
		name string
		text string
		want error
		pos  int
	}{
		{"useless escape", `ab\c`, ErrUselessEscape, 2},
		{"unfinished escape", `ab\`, ErrUnfinishedEscape, 2},
		{"unclosed placeholder", "x[hero", ErrUnclosedPlaceholder, 1},
		{"empty placeholder", "[]", ErrEmptyPlaceholder, 0},
		{"too many parts", "[a:b:c]", ErrPlaceholderTooManyParts, 0},
		{"unknown placeholder", "[doesnotexist]", ErrUnknownPlaceholder, 0},
		{"unknown directive with value", "[nope:3]", ErrUnknownPlaceholder, 0},
		{"invalid value", "[color:blue]", ErrInvalidValue, 0},
		{"negative value", "[value:-1]", ErrInvalidValue, 0},
		{"value over uint32", "[value:4294967296]", ErrInvalidValue, 0},
		{"inline out of range", "[color:256]", ErrArgumentOutOfRange, 0},
		{"single word out of range", "[item:65536]", ErrArgumentOutOfRange, 0},
		{"no-argument offset out of range", "[hero:256]", ErrArgumentOutOfRange, 0},
		{"error after text", "hello [doesnotexist]", ErrUnknownPlaceholder, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Encode(tt.text)
			require.Nil(t, got)
			require.ErrorIs(t, err, tt.want)

			var eerr *EncodeError
			require.ErrorAs(t, err, &eerr)
			require.Equal(t, tt.pos, eerr.Pos)
		})
	}
}

func TestEncoder_NoArgumentEntryWithValue(t *testing.T) {
	enc := NewEncoder(table.New([]table.Entry{
		table.NewEntry("hero", 0xE100, 0, 0, 0),
		table.NewEntry("rival:", 0xE200, 0, 0, 0),
	}).LabelIndex())

	tests := []struct {
		text string
		want []uint16
	}{
		{"[hero:1]", []uint16{0xE101}},
		{"[hero:0]", []uint16{0xE100}},
		{"[rival:255]", []uint16{0xE2FF}},
		{"[hero]", []uint16{0xE100}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := enc.Encode(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := enc.Encode("[hero:256]")
	require.ErrorIs(t, err, ErrArgumentOutOfRange)
	require.EqualError(t, err, `placeholder argument out of range at byte 0: 256 for "hero:", must be at most 255`)
}

func TestEncodeError_Details(t *testing.T) {
	_, enc := newCodec()

	_, err := enc.Encode(`\c`)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, 'c', eerr.Char)

	_, err = enc.Encode("[a:b:c]")
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, []string{"a:", "b:", "c"}, eerr.Parts)
	require.Contains(t, err.Error(), `parts are ["a:" "b:" "c"]`)

	_, err = enc.Encode("[color:256]")
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, "color:", eerr.Name)
	require.Equal(t, uint64(255), eerr.Limit)
	require.EqualError(t, err, `placeholder argument out of range at byte 0: 256 for "color:", must be at most 255`)

	_, err = enc.Encode("[color:blue]")
	require.ErrorAs(t, err, &eerr)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Equal(t, "blue", eerr.Value)

	_, err = enc.Encode("[doesnotexist]")
	require.EqualError(t, err, `unknown placeholder at byte 0: "doesnotexist"`)

	_, err = enc.Encode("[")
	require.EqualError(t, err, "the string ends with an unclosed placeholder at byte 0")
}

func TestEncoder_EncodeBytes(t *testing.T) {
	_, enc := newCodec()

	got, err := enc.EncodeBytes("H[hero]")
	require.NoError(t, err)
	require.Equal(t, []byte{'H', 0, 0x00, 0xE1}, got)

	_, err = enc.EncodeBytes("[")
	require.ErrorIs(t, err, ErrUnclosedPlaceholder)
}

func BenchmarkEncoder_Encode(b *testing.B) {
	_, enc := newCodec()
	text := "Welcome, [hero]! Take this [color:3]gift[color:0] worth [value:123456] Poké."

	b.ResetTimer()
	for b.Loop() {
		_, _ = enc.Encode(text)
	}
}
