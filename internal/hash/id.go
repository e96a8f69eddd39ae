package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over several writes.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// Write adds data to the digest.
func (d Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// WriteString adds s to the digest.
func (d Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// Sum64 returns the current hash value.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
