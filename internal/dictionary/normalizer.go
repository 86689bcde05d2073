package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces a name to its comparable form: trimmed, lower-cased,
// decomposed (NFD) and stripped of combining marks. Internal whitespace is kept as is.
func Normalize(line string) string {
	s := strings.TrimSpace(line)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	// Marks stripped next to the edges can expose whitespace.
	return strings.TrimSpace(stripMarks(s))
}

// stripMarks decomposes s and removes nonspacing marks. The result is left decomposed.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// hasLetter reports whether s contains at least one alphabetic character.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isLineBreak matches the characters Unicode treats as line boundaries.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// splitLines breaks text into trimmed, non-empty lines in their original order.
func splitLines(text string) []string {
	var out []string
	for _, raw := range strings.FieldsFunc(text, isLineBreak) {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
