package service

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold performs case-insensitive matching. cases.Caser is stateful, so a
// fresh one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold reports whether needle occurs in haystack ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

// equalFold reports whether a and b are equal ignoring case.
func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}

// filter returns the entities for which keep is true, preserving order.
func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
