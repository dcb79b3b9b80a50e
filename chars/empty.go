package chars

type empty struct{}

// Empty returns the zero-length view. It is the identity element of Concat.
func Empty() View { return empty{} }

func (empty) Len() int { return 0 }

func (empty) At(i int) (rune, error) { return 0, indexError(i, 0) }

func (e empty) Slice(start, end int) (View, error) {
	if err := checkSlice(start, end, 0); err != nil {
		return nil, err
	}
	return e, nil
}

func (empty) String() string { return "" }

func (empty) at(i int) rune { panic(indexError(i, 0)) }

func (e empty) slice(int, int) View { return e }

func (empty) walk(int, int, func(rune) bool) bool { return true }
