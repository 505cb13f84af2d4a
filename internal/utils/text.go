package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName returns the case-folded, trimmed form of a catalog name.
// A new Caser is built per call because Casers are not safe for concurrent use.
func FoldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// SameName reports whether two catalog names match case-insensitively.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}
