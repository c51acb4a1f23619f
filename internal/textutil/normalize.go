// Package textutil implements the text normalization pass shared by the
// lexicon, the frequency model and the analyzer. Raw text goes in,
// lowercase whitespace-free tokens come out.
package textutil

import (
	"fmt"
	"regexp"
	"strings"
)

// stripped characters are removed outright; hyphens instead split
// compounds into separate tokens.
const stripped = ".,/#?!%^'\"‘’“”&*;:{}=_`~()"

var whitespace = regexp.MustCompile(`\s+`)

// Normalize converts raw text into comparable tokens: hyphens become
// spaces, punctuation is dropped, everything is lowercased, and the
// result is split on runs of whitespace.
//
// Empty or all-punctuation input yields a single empty token; callers
// that store or count tokens must skip those.
func Normalize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' {
			return ' '
		}
		if strings.ContainsRune(stripped, r) {
			return -1
		}
		return r
	}, text)
	return whitespace.Split(strings.ToLower(cleaned), -1)
}

// HasNumericPrefix reports whether a token starts with a parseable
// integer. Tokens like "3rd" count as numeric; the analyzer relies on
// that leniency to skip ordinals and unit-suffixed figures.
func HasNumericPrefix(token string) bool {
	var n int
	_, err := fmt.Sscanf(token, "%d", &n)
	return err == nil
}
