package chars

// literal wraps a rune buffer directly.
type literal struct {
	r []rune
}

// Of returns a view over the runes of s.
//
// The string is decoded once; invalid UTF-8 bytes become utf8.RuneError.
func Of(s string) View {
	if s == "" {
		return Empty()
	}
	return literal{r: []rune(s)}
}

// OfRunes returns a view that borrows r. The caller must not modify r
// afterwards.
func OfRunes(r []rune) View {
	if len(r) == 0 {
		return Empty()
	}
	return literal{r: r[:len(r):len(r)]}
}

func (l literal) Len() int { return len(l.r) }

func (l literal) At(i int) (rune, error) {
	if err := checkIndex(i, len(l.r)); err != nil {
		return 0, err
	}
	return l.r[i], nil
}

func (l literal) Slice(start, end int) (View, error) {
	if err := checkSlice(start, end, len(l.r)); err != nil {
		return nil, err
	}
	return l.slice(start, end), nil
}

func (l literal) String() string { return string(l.r) }

func (l literal) at(i int) rune { return l.r[i] }

func (l literal) slice(start, end int) View {
	if start == 0 && end == len(l.r) {
		return l
	}
	if start == end {
		return Empty()
	}
	return &sub{src: l, off: start, n: end - start}
}

func (l literal) walk(start, end int, yield func(rune) bool) bool {
	for _, r := range l.r[start:end] {
		if !yield(r) {
			return false
		}
	}
	return true
}
