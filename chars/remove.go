package chars

// Remove returns a view of src with every occurrence of r deleted.
//
// The fragments between occurrences are folded left with Concat, starting
// from Empty, so the result shares storage with src. When src does not
// contain r the result is src itself.
func Remove(src View, r rune) View {
	out := Empty()
	Split(src, r, func(frag View) bool {
		out = Concat(out, frag)
		return true
	})
	return out
}
