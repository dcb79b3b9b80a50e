// Package chars implements immutable, lazily composed character views.
//
// A View is an indexable run of runes. Views are never mutated: deriving a
// sub-range, joining two views, or removing a character builds a new view
// that references the original storage instead of copying it.
//
// Indexes are 0-based rune offsets. Ranges are half-open: [start, end).
package chars
