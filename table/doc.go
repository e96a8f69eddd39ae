// Package table holds the placeholder table of a code_table.bin file and the two
// lookup indices derived from it.
//
// A Table is an ordered list of entries, in file order. Each entry maps a
// placeholder label to a 16-bit code value and describes how the placeholder
// carries its numeric argument (see Kind).
//
// Tables are built once, either from entries (New) or from a SIR0 container
// (Load, Parse, Read), and are read-only afterwards. CodeIndex and LabelIndex
// are derived views: they store positions into the table's entry slice and keep
// the table alive, so they can be shared freely between goroutines.
//
// Duplicate code values or labels are resolved last-write-wins when an index is
// built. Validate reports them, together with inline-offset entries whose value
// is not 256-aligned.
package table
