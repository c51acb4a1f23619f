package spell

import (
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/spellserve/spellserve/internal/textutil"
)

// FrequencyModel maps observed tokens to strictly positive occurrence
// counts. A token is present iff it was observed at least once; a zero
// count is never stored, so absence and zero stay distinguishable.
type FrequencyModel struct {
	trie   *patricia.Trie
	tokens int
}

// NewFrequencyModel creates an empty model.
func NewFrequencyModel() *FrequencyModel {
	return &FrequencyModel{
		trie: patricia.NewTrie(),
	}
}

// Observe normalizes the text and increments the count of every token
// in it. Empty tokens from all-punctuation input are skipped.
func (m *FrequencyModel) Observe(text string) {
	for _, token := range textutil.Normalize(text) {
		if token == "" {
			continue
		}
		m.add(token)
	}
}

func (m *FrequencyModel) add(token string) {
	p := patricia.Prefix(token)
	if item := m.trie.Get(p); item != nil {
		m.trie.Set(p, item.(int)+1)
		return
	}
	m.trie.Insert(p, 1)
	m.tokens++
}

// Count returns the occurrence count for a token and whether the token
// was ever observed.
func (m *FrequencyModel) Count(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	item := m.trie.Get(patricia.Prefix(token))
	if item == nil {
		return 0, false
	}
	return item.(int), true
}

// TokenCount returns the number of distinct tokens observed.
func (m *FrequencyModel) TokenCount() int {
	return m.tokens
}
