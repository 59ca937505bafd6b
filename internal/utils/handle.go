package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldHandle returns the Unicode case-folded form of a handle for
// case-insensitive comparison. Surrounding whitespace is dropped.
func FoldHandle(handle string) string {
	// Caser values are stateful, so one per call
	return cases.Fold().String(strings.TrimSpace(handle))
}

// HandlesEqualFold reports whether two handles match case-insensitively
func HandlesEqualFold(a, b string) bool {
	return FoldHandle(a) == FoldHandle(b)
}

// NormalizeHandle trims the handle and adds the leading "@" if missing.
// An empty input stays empty.
func NormalizeHandle(handle string) string {
	h := strings.TrimSpace(handle)
	if h == "" {
		return ""
	}
	if !strings.HasPrefix(h, "@") {
		h = "@" + h
	}
	return h
}
