package tui

import (
	"unicode/utf8"
)

// shortens s to at most n runes with a trailing ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= n {
		return s
	}

	if n == 1 {
		return "…"
	}

	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
