package codetable

import (
	"bytes"
	"testing"

	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/format"
	"github.com/arloliu/codetable/placeholder"
	"github.com/arloliu/codetable/snapshot"
	"github.com/arloliu/codetable/table"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func sampleTable() *table.Table {
	return table.New([]table.Entry{
		table.NewEntry("hero", 0xE100, 0, 0, 0),
		table.NewEntry("color:", 0x8100, 1, 0, 0),
		table.NewEntry("color:red", 0x8105, 0, 0, 0),
		table.NewEntry("value:", 0xA000, 1, 2, 0),
	})
}

func TestOpen_SIR0(t *testing.T) {
	data, err := sampleTable().Marshal()
	require.NoError(t, err)

	codec, err := Open(data)
	require.NoError(t, err)
	require.True(t, sampleTable().Equal(codec.Table()))

	text := `[hero] got [value:70000] \[coins] in [color:red]red[color:0]`
	units, err := codec.Encode(text)
	require.NoError(t, err)

	got, err := codec.Decode(units)
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestOpen_Snapshot(t *testing.T) {
	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			snap, err := New(sampleTable()).Snapshot(snapshot.WithCompression(c))
			require.NoError(t, err)

			codec, err := Open(snap)
			require.NoError(t, err)
			require.True(t, sampleTable().Equal(codec.Table()))
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open([]byte("not a table"))
	require.ErrorIs(t, err, errs.ErrContainerDecode)

	_, err = Open([]byte(snapshot.Magic + "broken"))
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestOpen_Strict(t *testing.T) {
	invalid := table.New([]table.Entry{
		table.NewEntry("hero", 0xE100, 0, 0, 0),
		table.NewEntry("hero", 0xE101, 0, 0, 0),
	})

	data, err := invalid.Marshal()
	require.NoError(t, err)
	snap, err := New(invalid).Snapshot()
	require.NoError(t, err)

	for name, input := range map[string][]byte{"sir0": data, "snapshot": snap} {
		t.Run(name, func(t *testing.T) {
			_, err := Open(input, WithStrict(true))
			require.ErrorIs(t, err, errs.ErrDuplicateLabel)

			codec, err := Open(input)
			require.NoError(t, err)
			require.Equal(t, 2, codec.Table().Len())
		})
	}
}

func TestOpen_WithLogger(t *testing.T) {
	snap, err := New(sampleTable()).Snapshot()
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = Open(snap, WithLogger(zerolog.New(&out).Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	require.Contains(t, out.String(), "code table loaded from snapshot")
}

func TestCodec_InlineOffsetWithoutColon(t *testing.T) {
	codec := New(table.New([]table.Entry{
		table.NewEntry("color", 0x0100, 1, 0, 0),
	}))

	text, err := codec.Decode([]uint16{0x0105})
	require.NoError(t, err)
	require.Equal(t, "[color5]", text)

	units, err := codec.Encode("[color:5]")
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0105}, units)
}

func TestCodec_Bytes(t *testing.T) {
	codec := New(sampleTable())

	raw, err := codec.EncodeBytes("[hero]!")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xE1, '!', 0x00}, raw)

	text, err := codec.DecodeBytes(raw)
	require.NoError(t, err)
	require.Equal(t, "[hero]!", text)

	_, err = codec.DecodeBytes([]byte{0x00})
	require.ErrorIs(t, err, errs.ErrOddByteLength)
}

func TestCodec_Errors(t *testing.T) {
	codec := New(sampleTable())

	_, err := codec.Encode("[villain]")
	var encErr *placeholder.EncodeError
	require.ErrorAs(t, err, &encErr)
	require.ErrorIs(t, err, placeholder.ErrUnknownPlaceholder)

	_, err = codec.Decode([]uint16{0xA000, 1})
	var decErr *placeholder.DecodeError
	require.ErrorAs(t, err, &decErr)
	require.ErrorIs(t, err, placeholder.ErrIncompleteEmbeddedData)
}
