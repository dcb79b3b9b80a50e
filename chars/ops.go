package chars

import (
	"io"
	"iter"
	"unicode/utf8"
)

// All returns an iterator over (index, rune) pairs of v.
func All(v View) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		if v == nil {
			return
		}
		i := 0
		v.walk(0, v.Len(), func(r rune) bool {
			if !yield(i, r) {
				return false
			}
			i++
			return true
		})
	}
}

// Runes copies the runes of v into a new slice.
func Runes(v View) []rune {
	if v == nil || v.Len() == 0 {
		return nil
	}
	out := make([]rune, 0, v.Len())
	v.walk(0, v.Len(), func(r rune) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Equal reports whether a and b hold the same runes.
func Equal(a, b View) bool {
	if a == nil {
		a = Empty()
	}
	if b == nil {
		b = Empty()
	}
	if a.Len() != b.Len() {
		return false
	}
	ra := Runes(a)
	i := 0
	return b.walk(0, b.Len(), func(r rune) bool {
		if ra[i] != r {
			return false
		}
		i++
		return true
	})
}

const writeChunk = 512

// WriteTo writes v to w as UTF-8 without materializing it as a string.
func WriteTo(w io.Writer, v View) (int64, error) {
	if v == nil || v.Len() == 0 {
		return 0, nil
	}

	var (
		total int64
		err   error
	)
	buf := make([]byte, 0, writeChunk)
	flush := func() bool {
		var n int
		n, err = w.Write(buf)
		total += int64(n)
		buf = buf[:0]
		return err == nil
	}

	ok := v.walk(0, v.Len(), func(r rune) bool {
		if len(buf)+utf8.UTFMax > writeChunk && !flush() {
			return false
		}
		buf = utf8.AppendRune(buf, r)
		return true
	})
	if ok && len(buf) > 0 {
		flush()
	}
	return total, err
}

// Depth reports how many concat levels sit above the deepest rune of v.
// Literal and empty views have depth 0.
func Depth(v View) int {
	switch t := v.(type) {
	case *concat:
		return 1 + max(Depth(t.a), Depth(t.b))
	case *sub:
		return Depth(t.src)
	default:
		return 0
	}
}
