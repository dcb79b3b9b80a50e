package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/iw2rmb/commasplit/chars"
)

const (
	// Space is removed from the input before splitting.
	Space = ' '
	// Comma separates tokens.
	Comma = ','
)

// Tokens yields the comma-separated tokens of input after every space has
// been removed. Empty tokens are kept; an input with nothing left after
// space removal yields no tokens.
func Tokens(input string) iter.Seq[chars.View] {
	return chars.Fragments(chars.Remove(chars.Of(input), Space), Comma)
}

// Collect returns the tokens of input as strings.
func Collect(input string) []string {
	var out []string
	for tok := range Tokens(input) {
		out = append(out, tok.String())
	}
	return out
}

// Write writes each token of input to w followed by '\n'.
func Write(w io.Writer, input string) error {
	bw := bufio.NewWriter(w)
	for tok := range Tokens(input) {
		if _, err := chars.WriteTo(bw, tok); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush tokens: %w", err)
	}
	return nil
}
