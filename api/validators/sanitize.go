package validators

import (
	"strings"
	"unicode"
)

// SanitizeString trims input, drops control characters and keeps at most maxLen runes.
// Vietnamese product names are multi-byte, so the cut never splits a character.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(input))

	if maxLen <= 0 {
		return cleaned
	}
	n := 0
	for i := range cleaned {
		if n == maxLen {
			return cleaned[:i]
		}
		n++
	}
	return cleaned
}
