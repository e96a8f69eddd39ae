// Package endian provides byte order utilities for the code table and its strings.
//
// Game data files are little-endian. This package wraps encoding/binary's ByteOrder
// and AppendByteOrder into a single EndianEngine interface and adds helpers that
// convert between raw string bytes and 16-bit code units.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	units, err := endian.CodeUnits(engine, raw)
//	if err != nil {
//		return err
//	}
//
//	raw = endian.AppendCodeUnits(engine, nil, units)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/arloliu/codetable/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine used by the game files.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// CodeUnits splits data into 16-bit code units using the given byte order.
//
// Returns errs.ErrOddByteLength if data does not hold a whole number of units.
func CodeUnits(engine EndianEngine, data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrOddByteLength, len(data))
	}

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = engine.Uint16(data[i*2:])
	}

	return units, nil
}

// AppendCodeUnits appends the byte representation of units to dst.
func AppendCodeUnits(engine EndianEngine, dst []byte, units []uint16) []byte {
	if cap(dst)-len(dst) < len(units)*2 {
		grown := make([]byte, len(dst), len(dst)+len(units)*2)
		copy(grown, dst)
		dst = grown
	}

	for _, u := range units {
		dst = engine.AppendUint16(dst, u)
	}

	return dst
}
