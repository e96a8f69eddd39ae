// Package snapshot serializes a loaded code table into a compact, checksummed
// binary cache.
//
// Loading a table from its SIR0 container walks every pointer and decodes
// UTF-16 labels. A snapshot stores the already-decoded entries so tools that
// repeatedly open the same table can skip that work.
//
// # Format
//
// All integers are little-endian.
//
//	offset  size  field
//	0       4     magic "CTSN"
//	4       1     version (1)
//	5       1     compression type (format.CompressionType)
//	6       2     reserved, zero
//	8       4     entry count
//	12      4     payload length in bytes, after compression
//	16      n     payload
//	16+n    8     xxHash64 of the uncompressed payload
//
// The uncompressed payload holds one record per entry: the label as a uint8
// length-prefixed UTF-8 string followed by value, flags, length and reserved as
// uint16 values.
//
// # Usage
//
//	data, err := snapshot.Encode(tbl, snapshot.WithCompression(format.CompressionS2))
//	...
//	tbl, err = snapshot.Decode(data)
package snapshot
