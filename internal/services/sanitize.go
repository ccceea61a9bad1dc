package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeText trims surrounding whitespace and drops control characters
// other than newlines and tabs. It is for display only; queries are always
// parameterized.
func SanitizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
