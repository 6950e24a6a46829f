package tools

import (
	"strings"
	"unicode"
)

// DigitsOnly strips everything that is not a digit from raw.
// "(555) 123-4567" -> "5551234567".
func DigitsOnly(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
