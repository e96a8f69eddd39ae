package table

import "github.com/arloliu/codetable/internal/collision"

// blockMask selects the base of a 256-value inline-offset block.
const blockMask = 0xFF00

// CodeIndex maps code values to entries.
//
// It stores positions into its table and is safe for concurrent use.
type CodeIndex struct {
	table     *Table
	positions map[uint16]int
}

// CodeIndex builds the code value index. Duplicate values resolve to the last entry.
func (t *Table) CodeIndex() *CodeIndex {
	tracker := collision.NewTracker[uint16](len(t.entries))
	for i, e := range t.entries {
		tracker.Track(e.value, i)
	}

	return &CodeIndex{table: t, positions: tracker.Positions()}
}

// Table returns the table the index was built from.
func (ci *CodeIndex) Table() *Table {
	return ci.table
}

// Len returns the number of distinct code values.
func (ci *CodeIndex) Len() int {
	return len(ci.positions)
}

// Exact returns the entry whose code value is unit.
func (ci *CodeIndex) Exact(unit uint16) (Entry, bool) {
	pos, ok := ci.positions[unit]
	if !ok {
		return Entry{}, false
	}

	return ci.table.entries[pos], true
}

// Block returns the entry whose code value is the base of the 256-value block
// containing unit.
func (ci *CodeIndex) Block(unit uint16) (Entry, bool) {
	return ci.Exact(unit & blockMask)
}

// Match resolves a code unit to a placeholder.
//
// An exact match has offset 0. Otherwise the block base unit&0xFF00 is looked up
// and the offset is the low byte of unit.
func (ci *CodeIndex) Match(unit uint16) (Entry, uint32, bool) {
	if e, ok := ci.Exact(unit); ok {
		return e, 0, true
	}
	if e, ok := ci.Block(unit); ok {
		return e, uint32(unit &^ blockMask), true
	}

	return Entry{}, 0, false
}

// LabelIndex maps placeholder labels to entries.
//
// It stores positions into its table and is safe for concurrent use.
type LabelIndex struct {
	table     *Table
	positions map[string]int
}

// LabelIndex builds the label index. Duplicate labels resolve to the last entry.
func (t *Table) LabelIndex() *LabelIndex {
	tracker := collision.NewTracker[string](len(t.entries))
	for i, e := range t.entries {
		tracker.Track(e.label, i)
	}

	return &LabelIndex{table: t, positions: tracker.Positions()}
}

// Table returns the table the index was built from.
func (li *LabelIndex) Table() *Table {
	return li.table
}

// Len returns the number of distinct labels.
func (li *LabelIndex) Len() int {
	return len(li.positions)
}

// Lookup returns the entry labelled label.
func (li *LabelIndex) Lookup(label string) (Entry, bool) {
	pos, ok := li.positions[label]
	if !ok {
		return Entry{}, false
	}

	return li.table.entries[pos], true
}
