package spell

import (
	"github.com/spellserve/spellserve/internal/textutil"
)

// Analyze scans a sentence and maps every unrecognized token to its
// ranked suggestions. Recognized tokens are skipped, as are tokens with
// a parseable leading numeric prefix ("3rd" passes as a number, not a
// misspelling). Repeated tokens collapse to one entry; running Analyze
// twice against unchanged state yields identical results.
func (c *Checker) Analyze(sentence string) map[string][]string {
	report := make(map[string][]string)
	for _, token := range textutil.Normalize(sentence) {
		if c.lexicon.Contains(token) {
			continue
		}
		if textutil.HasNumericPrefix(token) {
			continue
		}
		report[token] = c.engine.Suggest(token)
	}
	return report
}
