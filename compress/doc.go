// Package compress provides the compression codecs used for table snapshots.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: data is stored as-is
//   - Zstd: best ratio; pure Go (klauspost/compress) by default, cgo builds use valyala/gozstd
//   - S2: fast, moderate ratio (klauspost/compress/s2)
//   - LZ4: fast decompression (pierrec/lz4)
//
// All codecs are stateless values and safe for concurrent use. Zstd and LZ4
// keep their heavy internal state in sync.Pools.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress
