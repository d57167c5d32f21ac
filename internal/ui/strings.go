package ui

import (
	"strings"
	"unicode/utf8"
)

// truncate shortens a string to the given rune limit, adding an ellipsis
// if needed. Indexing by rune keeps multi-byte titles intact.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// padRight pads a string with spaces to the given rune width.
func padRight(value string, width int) string {
	count := utf8.RuneCountInString(value)
	if count >= width {
		return value + " "
	}
	return value + strings.Repeat(" ", width-count)
}
