package sir0

import (
	"fmt"

	"github.com/arloliu/codetable/errs"
)

// maxDeltaBytes bounds one encoded delta; 5 groups of 7 bits cover every uint32 position.
const maxDeltaBytes = 5

// AppendOffsets appends the encoded pointer offset list for offsets to dst,
// including the terminating zero byte.
//
// offsets must be strictly ascending and non-zero.
func AppendOffsets(dst []byte, offsets []uint64) ([]byte, error) {
	var prev uint64
	for i, off := range offsets {
		if off <= prev {
			return nil, fmt.Errorf("%w: offset %d (0x%x) is not above the previous one (0x%x)",
				errs.ErrInvalidHeader, i, off, prev)
		}
		dst = appendDelta(dst, off-prev)
		prev = off
	}

	return append(dst, 0), nil
}

func appendDelta(dst []byte, v uint64) []byte {
	var tmp [10]byte
	n := 0
	for {
		tmp[n] = byte(v & 0x7F)
		n++
		v >>= 7
		if v == 0 {
			break
		}
	}

	for i := n - 1; i >= 0; i-- {
		b := tmp[i]
		if i != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}

	return dst
}

// DecodeOffsets decodes a pointer offset list from data.
//
// It returns the absolute offsets and the number of bytes consumed, terminator
// included. errs.ErrTruncatedOffsetList is returned when data ends before the
// terminator.
func DecodeOffsets(data []byte) ([]uint64, int, error) {
	var (
		offsets []uint64
		cur     uint64
		acc     uint64
		groups  int
	)

	for i, b := range data {
		acc = acc<<7 | uint64(b&0x7F)
		groups++

		if b&0x80 != 0 {
			if groups >= maxDeltaBytes {
				return nil, 0, fmt.Errorf("%w: delta at byte %d is longer than %d bytes",
					errs.ErrInvalidHeader, i, maxDeltaBytes)
			}

			continue
		}

		if acc == 0 {
			return offsets, i + 1, nil
		}

		cur += acc
		offsets = append(offsets, cur)
		acc = 0
		groups = 0
	}

	return nil, 0, fmt.Errorf("%w: %d bytes without terminator", errs.ErrTruncatedOffsetList, len(data))
}
