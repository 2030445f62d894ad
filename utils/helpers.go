package utils

import "strings"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:Min(max, len(runes))])
	}
	return string(runes[:max-1]) + "…"
}

// FirstLine returns s up to its first newline, trimmed.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
