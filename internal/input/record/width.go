package record

import "golang.org/x/text/width"

// IsFullWidth returns true if the rune occupies two terminal cells.
// Full-width characters are never key-repeat coalesced and cost two
// character slots in narrow (non-Unicode) reads.
func IsFullWidth(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

// CellWidth returns the number of terminal cells the rune occupies,
// either one or two.
func CellWidth(r rune) int {
	if IsFullWidth(r) {
		return 2
	}
	return 1
}
