// Package text provides normalization and contact extraction for raw post text.
package text

import (
	"regexp"
	"strings"
)

// digitFolder maps Eastern-Arabic digit glyphs (both the Persian and the
// Arabic-Indic blocks) to their ASCII equivalents.
var digitFolder = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

var horizontalWS = regexp.MustCompile(`[ \t]+`)

// FoldDigits replaces Eastern-Arabic digit glyphs with ASCII digits.
func FoldDigits(s string) string {
	return digitFolder.Replace(s)
}

// Normalize canonicalizes raw message text: zero-width non-joiners and BOMs
// become spaces, runs of horizontal whitespace collapse to a single space and
// the result is trimmed. Newlines are preserved so line-oriented field
// patterns still work. Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\u200c", " ") // ZWNJ
	s = strings.ReplaceAll(s, "\uFEFF", " ") // BOM
	s = horizontalWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPersian reports whether any rune falls in the Arabic-script block.
func ContainsPersian(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
