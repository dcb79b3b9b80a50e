package chars

// concat presents a followed by b as one sequence.
type concat struct {
	a, b View
	n    int
}

// Concat returns a view of a followed by b. Neither operand is copied.
// An empty operand returns the other one unchanged.
func Concat(a, b View) View {
	if a == nil || a.Len() == 0 {
		if b == nil {
			return Empty()
		}
		return b
	}
	if b == nil || b.Len() == 0 {
		return a
	}
	return &concat{a: a, b: b, n: a.Len() + b.Len()}
}

func (c *concat) Len() int { return c.n }

func (c *concat) At(i int) (rune, error) {
	if err := checkIndex(i, c.n); err != nil {
		return 0, err
	}
	return c.at(i), nil
}

func (c *concat) Slice(start, end int) (View, error) {
	if err := checkSlice(start, end, c.n); err != nil {
		return nil, err
	}
	return c.slice(start, end), nil
}

func (c *concat) String() string { return build(c) }

func (c *concat) at(i int) rune {
	if al := c.a.Len(); i >= al {
		return c.b.at(i - al)
	}
	return c.a.at(i)
}

func (c *concat) slice(start, end int) View {
	if start == 0 && end == c.n {
		return c
	}
	if start == end {
		return Empty()
	}
	return &sub{src: c, off: start, n: end - start}
}

func (c *concat) walk(start, end int, yield func(rune) bool) bool {
	al := c.a.Len()
	if start < al {
		if !c.a.walk(start, min(end, al), yield) {
			return false
		}
	}
	if end > al {
		return c.b.walk(max(start-al, 0), end-al, yield)
	}
	return true
}
