// Package grapheme measures and trims token text for terminal display.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := runewidth.StringWidth(text)
	if w <= 0 {
		// runewidth reports zero for some clusters uniseg can size.
		w = max(uniseg.StringWidth(text), 0)
	}
	return w
}

// Truncate cuts text to at most maxWidth cells on a grapheme boundary,
// ending it with Ellipsis. It reports whether text was cut.
// A non-positive maxWidth leaves text unchanged.
func Truncate(text string, maxWidth int) (string, bool) {
	if maxWidth <= 0 || Width(text) <= maxWidth {
		return text, false
	}

	budget := maxWidth - Width(Ellipsis)
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > budget {
			break
		}
		sb.WriteString(c)
		used += w
	}
	sb.WriteString(Ellipsis)
	return sb.String(), true
}
