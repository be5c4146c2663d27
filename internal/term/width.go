package term

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of terminal columns a string occupies.
// East-Asian wide and fullwidth runes count as two columns.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// Pad right-pads s with spaces to the given display width. Strings already
// wider than w are returned unchanged.
func Pad(s string, w int) string {
	gap := w - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
