package compress

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/arloliu/codetable/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// labelPayload mimics a snapshot payload: short labels with small fixed fields.
func labelPayload(n int) []byte {
	var buf bytes.Buffer
	for i := range n {
		label := []byte("placeholder:")
		buf.WriteByte(byte(len(label) + 1))
		buf.Write(label)
		buf.WriteByte(byte('a' + i%26))
		buf.Write([]byte{byte(i), 0x81, 1, 0, 0, 0, 0, 0})
	}

	return buf.Bytes()
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := CreateCodec(typ, "snapshot")
		require.NoError(t, err)
		require.NotNil(t, codec)

		builtin, err := GetCodec(typ)
		require.NoError(t, err)
		require.IsType(t, builtin, codec)
	}

	_, err := CreateCodec(format.CompressionType(0x9), "snapshot")
	require.EqualError(t, err, "invalid snapshot compression: Unknown")

	_, err = GetCodec(format.CompressionType(0))
	require.EqualError(t, err, "unsupported compression type: Unknown")
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"small_text", []byte("[hero] found [value:100] Poké")},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{"label_payload", labelPayload(500)},
		{"highly_compressible", make([]byte, 256*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalid := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("this is not compressed data"),
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}
		t.Run(codecName, func(t *testing.T) {
			for _, data := range invalid {
				_, err := codec.Decompress(data)
				require.Error(t, err)
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	data := labelPayload(64)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, 16)

			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					if err != nil {
						errs <- err
						return
					}
					out, err := codec.Decompress(compressed)
					if err != nil {
						errs <- err
						return
					}
					if !bytes.Equal(out, data) {
						errs <- errors.New("round trip mismatch")
					}
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}

func TestLZ4_LargeExpansionRatio(t *testing.T) {
	codec := NewLZ4Compressor()
	data := make([]byte, 1024*1024)

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data), "needs several buffer doublings")

	out, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestS2_DecodedLengthLimit(t *testing.T) {
	// uvarint header announcing a 32 MiB block
	data := []byte{0x80, 0x80, 0x80, 0x10, 0x00}

	_, err := NewS2Compressor().Decompress(data)
	require.ErrorContains(t, err, "exceeds")
}
