package chars

// sub is the window [off, off+n) of src.
type sub struct {
	src View
	off int
	n   int
}

// Sub returns the window [start, end) of v. It is equivalent to v.Slice.
func Sub(v View, start, end int) (View, error) {
	if v == nil {
		v = Empty()
	}
	return v.Slice(start, end)
}

func (s *sub) Len() int { return s.n }

func (s *sub) At(i int) (rune, error) {
	if err := checkIndex(i, s.n); err != nil {
		return 0, err
	}
	return s.at(i), nil
}

func (s *sub) Slice(start, end int) (View, error) {
	if err := checkSlice(start, end, s.n); err != nil {
		return nil, err
	}
	return s.slice(start, end), nil
}

func (s *sub) String() string { return build(s) }

func (s *sub) at(i int) rune { return s.src.at(s.off + i) }

// Windows of windows stay one level deep over the original source.
func (s *sub) slice(start, end int) View {
	if start == 0 && end == s.n {
		return s
	}
	if start == end {
		return Empty()
	}
	return &sub{src: s.src, off: s.off + start, n: end - start}
}

func (s *sub) walk(start, end int, yield func(rune) bool) bool {
	return s.src.walk(s.off+start, s.off+end, yield)
}
