package compress

// ZstdCompressor provides Zstandard compression.
//
// Builds with cgo use valyala/gozstd; other builds use the pure Go
// klauspost/compress/zstd implementation. Both produce standard zstd frames, so
// snapshots are portable between them.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
