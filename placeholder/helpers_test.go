package placeholder

import (
	"github.com/arloliu/codetable/table"
)

func sampleTable() *table.Table {
	return table.New([]table.Entry{
		table.NewEntry("hero", 0xE100, 0, 0, 0),
		table.NewEntry("partner", 0xE101, 0, 0, 0),
		table.NewEntry("color:", 0x8100, 1, 0, 0),
		table.NewEntry("color:red", 0x8105, 0, 0, 0),
		table.NewEntry("value:", 0xA000, 1, 2, 0),
		table.NewEntry("item:", 0xA100, 1, 1, 0),
		table.NewEntry("wide:", 0xA200, 1, 3, 0),
		table.NewEntry("color", 0x8200, 1, 0, 0),
	})
}

func newCodec() (*Decoder, *Encoder) {
	t := sampleTable()
	return NewDecoder(t.CodeIndex()), NewEncoder(t.LabelIndex())
}

func utf16Units(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		out = append(out, uint16(r))
	}

	return out
}
