package table

import (
	"iter"

	"github.com/arloliu/codetable/endian"
	"github.com/arloliu/codetable/internal/hash"
)

// Table is the ordered list of placeholder entries.
//
// A Table is immutable and safe for concurrent use.
type Table struct {
	entries []Entry
}

// New creates a table from entries. The slice is copied.
func New(entries []Entry) *Table {
	owned := make([]Entry, len(entries))
	copy(owned, entries)

	return &Table{entries: owned}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns the entry at position i. It panics if i is out of range.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the entries in file order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// All iterates over the entries with their positions.
func (t *Table) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range t.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Equal reports whether both tables hold the same entries in the same order.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.entries) != len(other.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i] != other.entries[i] {
			return false
		}
	}

	return true
}

// Fingerprint returns an xxHash64 over every entry field, in order.
//
// Tables with equal entries have equal fingerprints, which makes the value
// usable as a cache key for snapshots.
func (t *Table) Fingerprint() uint64 {
	engine := endian.GetLittleEndianEngine()
	digest := hash.NewDigest()

	var rec []byte
	for _, e := range t.entries {
		rec = rec[:0]
		rec = engine.AppendUint32(rec, uint32(len(e.label))) //nolint:gosec
		digest.Write(rec)
		digest.WriteString(e.label)

		rec = rec[:0]
		rec = engine.AppendUint16(rec, e.value)
		rec = engine.AppendUint16(rec, e.flags)
		rec = engine.AppendUint16(rec, e.length)
		rec = engine.AppendUint16(rec, e.reserved)
		digest.Write(rec)
	}

	return digest.Sum64()
}
