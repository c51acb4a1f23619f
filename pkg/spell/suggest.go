package spell

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Engine generates single-edit spelling suggestions: every string one
// delete, transpose, substitute or insert away from the input, filtered
// against the lexicon and ranked by observed frequency.
type Engine struct {
	lexicon *Lexicon
	freqs   *FrequencyModel
}

// NewEngine creates an engine over the given lexicon and model.
func NewEngine(lexicon *Lexicon, freqs *FrequencyModel) *Engine {
	return &Engine{
		lexicon: lexicon,
		freqs:   freqs,
	}
}

type candidate struct {
	word string
	freq int
}

// Suggest returns likely intended spellings for a misspelled word,
// most frequent first. Recognized words need no correction and return
// an empty list. Equal-frequency candidates keep generation order:
// deletions, transpositions, substitutions, insertions, each by
// ascending position and alphabet order.
func (e *Engine) Suggest(word string) []string {
	if e.lexicon.Contains(word) {
		return nil
	}

	// Dedup is by exact string value: the same candidate reachable via
	// several edit paths keeps its first-generated rank.
	seen := mapset.NewThreadUnsafeSet[string]()
	var accepted []candidate

	consider := func(cand string) {
		if cand == word || seen.Contains(cand) {
			return
		}
		seen.Add(cand)
		freq, ok := e.freqs.Count(cand)
		if !ok || !e.lexicon.Contains(cand) {
			return
		}
		accepted = append(accepted, candidate{word: cand, freq: freq})
	}

	for i := 0; i < len(word); i++ {
		consider(word[:i] + word[i+1:])
	}
	for i := 0; i+1 < len(word); i++ {
		consider(word[:i] + string(word[i+1]) + string(word[i]) + word[i+2:])
	}
	for i := 0; i < len(word); i++ {
		for _, c := range alphabet {
			consider(word[:i] + string(c) + word[i+1:])
		}
	}
	for i := 0; i <= len(word); i++ {
		for _, c := range alphabet {
			consider(word[:i] + string(c) + word[i:])
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].freq > accepted[j].freq
	})

	suggestions := make([]string, len(accepted))
	for i, c := range accepted {
		suggestions[i] = c.word
	}
	return suggestions
}
