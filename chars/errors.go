package chars

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("chars: out of range")

// RangeError reports an index or window that falls outside a view.
type RangeError struct {
	Op    string // "at" or "slice"
	Start int
	End   int // equals Start for "at"
	Len   int
}

func (e *RangeError) Error() string {
	if e.Op == "at" {
		return fmt.Sprintf("chars: at %d: index out of range [0, %d)", e.Start, e.Len)
	}
	return fmt.Sprintf("chars: slice [%d, %d): out of range for length %d", e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func indexError(i, n int) error {
	return &RangeError{Op: "at", Start: i, End: i, Len: n}
}

func sliceError(start, end, n int) error {
	return &RangeError{Op: "slice", Start: start, End: end, Len: n}
}
