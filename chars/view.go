package chars

import "strings"

// View is an immutable sequence of runes.
//
// The variants (literal, concat, sub-range, empty) live in this package; use
// Of, OfRunes, Concat, Sub and Empty to build views.
type View interface {
	// Len returns the number of runes in the view.
	Len() int

	// At returns the rune at index i, or a *RangeError when i is outside
	// [0, Len()).
	At(i int) (rune, error)

	// Slice returns the window [start, end) of the view without copying.
	Slice(start, end int) (View, error)

	// String materializes the view.
	String() string

	// Unchecked accessors. Callers guarantee bounds.
	at(i int) rune
	slice(start, end int) View
	walk(start, end int, yield func(rune) bool) bool
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return indexError(i, n)
	}
	return nil
}

func checkSlice(start, end, n int) error {
	if start < 0 || end > n || start > end {
		return sliceError(start, end, n)
	}
	return nil
}

func build(v View) string {
	n := v.Len()
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	v.walk(0, n, func(r rune) bool {
		sb.WriteRune(r)
		return true
	})
	return sb.String()
}
