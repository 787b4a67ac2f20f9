package models

import (
	"strings"
	"unicode"
)

// SanitizeName makes a role model name safe to use as the first segment of
// a record file name.
//
// Whitespace and apostrophes are dropped so "Selena Gomez" becomes
// "SelenaGomez". Underscores are dropped because they delimit the segments
// of a record file name, and path separators, control characters and
// characters reserved on Windows (: * ? " < > |) are dropped so the result
// is always a single portable path element.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		switch r {
		case '\'', '’', '_', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, name)
}

// ThemeIndex returns the position of theme in vocabulary, or -1.
func ThemeIndex(vocabulary []string, theme string) int {
	for i, t := range vocabulary {
		if t == theme {
			return i
		}
	}
	return -1
}
