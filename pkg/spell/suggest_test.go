package spell

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hbollon/go-edlib"
)

// newTestEngine builds an engine over a word->frequency dictionary.
// Every word is both recognized and observed freq times.
func newTestEngine(dictionary map[string]int) *Engine {
	lexicon := NewLexicon()
	freqs := NewFrequencyModel()
	for word, freq := range dictionary {
		lexicon.Add(word)
		for i := 0; i < freq; i++ {
			freqs.Observe(word)
		}
	}
	return NewEngine(lexicon, freqs)
}

func TestSuggest(t *testing.T) {
	dictionary := map[string]int{
		"have":         10,
		"gave":         5,
		"cave":         5,
		"few":          8,
		"fig":          3,
		"the":          20,
		"sentence":     4,
		"polymorphism": 2,
		"a":            1,
	}
	engine := newTestEngine(dictionary)

	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"have", nil, "Recognized word needs no correction"},
		{"polymrphism", []string{"polymorphism"}, "Missing letter restored by insertion"},
		{"havv", []string{"have"}, "Single substitution"},
		{"fiw", []string{"few", "fig"}, "Two substitutions rank by frequency"},
		{"sentense", []string{"sentence"}, "Classic misspelling"},
		{"have2", []string{"have"}, "Deletion of a trailing digit"},
		{"bave", []string{"have", "cave", "gave"}, "Frequency ranks first, generation order breaks ties"},
		{"", []string{"a"}, "Empty input still tries insertions"},
		{"xyzzy", nil, "No distance-1 neighbor in lexicon"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := engine.Suggest(tc.input)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Suggest(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSuggestNeverIncludesInput(t *testing.T) {
	engine := newTestEngine(map[string]int{"have": 10, "gave": 5, "cave": 2})
	for _, input := range []string{"havv", "ave", "haveh", "gavee"} {
		for _, s := range engine.Suggest(input) {
			if s == input {
				t.Errorf("Suggest(%q) contains the input itself", input)
			}
		}
	}
}

func TestSuggestRankingMonotonic(t *testing.T) {
	engine := newTestEngine(map[string]int{
		"have": 10,
		"gave": 5,
		"cave": 1,
		"wave": 7,
		"nave": 3,
	})

	suggestions := engine.Suggest("bave")
	if len(suggestions) < 2 {
		t.Fatalf("expected several candidates, got %v", suggestions)
	}
	for i := 1; i < len(suggestions); i++ {
		prev, _ := engine.freqs.Count(suggestions[i-1])
		cur, _ := engine.freqs.Count(suggestions[i])
		if prev < cur {
			t.Errorf("ranking not monotonic at %d: %s(%d) before %s(%d)",
				i, suggestions[i-1], prev, suggestions[i], cur)
		}
	}
}

func TestSuggestDeterministic(t *testing.T) {
	engine := newTestEngine(map[string]int{
		"have": 5, "gave": 5, "cave": 5, "wave": 5, "nave": 5,
	})

	first := engine.Suggest("bave")
	for i := 0; i < 10; i++ {
		if got := engine.Suggest("bave"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Suggest not stable: %v vs %v", got, first)
		}
	}
}

func TestSuggestDedupByExactString(t *testing.T) {
	// "apple" is reachable from "aple" by inserting 'p' at two positions;
	// it must appear once.
	engine := newTestEngine(map[string]int{"apple": 4, "ale": 2})

	suggestions := engine.Suggest("aple")
	found := 0
	for _, s := range suggestions {
		if s == "apple" {
			found++
		}
	}
	if found != 1 {
		t.Errorf("Suggest(\"aple\") = %v, want exactly one \"apple\"", suggestions)
	}
}

func TestSuggestRequiresFrequency(t *testing.T) {
	// A word in the lexicon that was never observed is excluded from
	// suggestions, not ranked last.
	lexicon := NewLexicon()
	lexicon.Add("fig")
	engine := NewEngine(lexicon, NewFrequencyModel())

	if got := engine.Suggest("fug"); len(got) != 0 {
		t.Errorf("Suggest(\"fug\") = %v, want empty for unobserved lexicon word", got)
	}
}

func TestSuggestionsAreSingleEdit(t *testing.T) {
	engine := newTestEngine(map[string]int{
		"have": 10, "gave": 5, "haves": 4, "hav": 3, "heave": 2, "the": 20,
	})

	for _, input := range []string{"havv", "hvae", "haev", "ahve", "hve"} {
		for _, s := range engine.Suggest(input) {
			if dist := edlib.OSADamerauLevenshteinDistance(input, s); dist > 1 {
				t.Errorf("Suggest(%q) returned %q at edit distance %d", input, s, dist)
			}
		}
	}
}

// 1000 words in dict, rotating misspelled inputs.
func BenchmarkSuggest(b *testing.B) {
	dictionary := make(map[string]int, 1000)
	for i := 0; i < 1000; i++ {
		dictionary[fmt.Sprintf("word%d", i)] = i + 1
	}
	engine := newTestEngine(dictionary)

	inputs := []string{"wrd123", "word1x", "wordd2", "woord3", "wird4"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Suggest(inputs[i%len(inputs)])
	}
}
