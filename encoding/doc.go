// Package encoding provides the length-prefixed record codec used by table snapshots.
//
// A record is a sequence of fields written with VarStringEncoder:
//   - strings: 1 byte length (0-255) followed by the UTF-8 bytes
//   - uint16 values: 2 bytes in the engine's byte order
//
// VarStringDecoder reads the same fields back in order. Decoding never panics on
// truncated input; every read reports errs.ErrInvalidPayload instead.
package encoding
