package chars

import "iter"

// Split calls yield with each fragment of src delimited by sep, left to
// right. Separators are not part of any fragment.
//
// src is traversed once. When the traversal reaches the last rune, the
// fragment after the most recent separator is emitted as well, so a trailing
// separator produces a trailing empty fragment. An empty src emits nothing.
//
// Fragments are windows over src; no runes are copied. Split stops as soon as
// yield returns false.
func Split(src View, sep rune, yield func(View) bool) {
	if src == nil {
		return
	}
	n := src.Len()
	if n == 0 {
		return
	}

	i, start := 0, 0
	src.walk(0, n, func(r rune) bool {
		if r == sep {
			if !yield(src.slice(start, i)) {
				return false
			}
			start = i + 1
		}
		if i == n-1 {
			if !yield(src.slice(start, n)) {
				return false
			}
		}
		i++
		return true
	})
}

// Fragments returns the fragments of src delimited by sep as an iterator.
// See Split for the fragment rules. Every range over the iterator starts a
// new traversal.
func Fragments(src View, sep rune) iter.Seq[View] {
	return func(yield func(View) bool) {
		Split(src, sep, yield)
	}
}

// Count reports how many fragments Split yields for src and sep.
func Count(src View, sep rune) int {
	n := 0
	Split(src, sep, func(View) bool {
		n++
		return true
	})
	return n
}
