package table

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/sir0"
)

// Marshal writes the table as a code_table.bin SIR0 container.
//
// Layout after the SIR0 header:
//
//	0x10  pointer to the label pool
//	      label pool: null-terminated UTF-16LE labels, in entry order
//	      entry records, 4-byte aligned, one per entry
//	      content header: pointer to the records, pointer to the label pool, u32 count
//
// The pointer offset list therefore starts with the two SIR0 header pointers and
// the label pool pointer, and ends with the two content header pointers, which
// is the shape Load expects. Labels containing U+0000 can't be stored.
func (t *Table) Marshal() ([]byte, error) {
	b := sir0.NewBuilder()
	defer b.Release()

	poolPtrPos := b.Len()
	b.WritePointer(0)

	labelPool := b.Len()
	labelOffsets := make([]uint32, len(t.entries))
	for i, e := range t.entries {
		if strings.ContainsRune(e.label, 0) {
			return nil, fmt.Errorf("%w: entry %d contains U+0000", errs.ErrInvalidLabel, i)
		}

		labelOffsets[i] = uint32(b.Len()) //nolint:gosec
		for _, u := range utf16.Encode([]rune(e.label)) {
			b.WriteUint16(u)
		}
		b.WriteUint16(0)
	}
	b.Align(sir0.PointerSize)

	records := b.Len()
	for i, e := range t.entries {
		b.WritePointer(labelOffsets[i])
		b.WriteUint16(e.value)
		b.WriteUint16(e.flags)
		b.WriteUint16(e.length)
		b.WriteUint16(e.reserved)
	}

	content := b.Len()
	b.WritePointer(uint32(records))   //nolint:gosec
	b.WritePointer(uint32(labelPool)) //nolint:gosec
	b.WriteUint32(uint32(len(t.entries)))

	if err := b.PatchPointer(poolPtrPos, uint32(labelPool)); err != nil { //nolint:gosec
		return nil, err
	}

	return b.Finish(uint32(content)) //nolint:gosec
}
