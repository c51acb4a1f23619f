package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spellserve/spellserve/pkg/spell"
)

func TestWriteAndReadIndex(t *testing.T) {
	words := []string{"fig\r\n", "few", "have", "fig", "", "banana", "a"}

	var buf bytes.Buffer
	stats, err := WriteIndex(&buf, words)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Buckets) // lengths 1, 3, 4, 6
	assert.Equal(t, 5, stats.Words)   // duplicate and empty dropped

	lexicon := spell.NewLexicon()
	readStats, err := ReadIndex(bytes.NewReader(buf.Bytes()), lexicon)
	require.NoError(t, err)
	assert.Equal(t, stats, readStats)

	for _, w := range []string{"a", "fig", "few", "have", "banana"} {
		assert.True(t, lexicon.Contains(w), "Contains(%q)", w)
	}
	assert.False(t, lexicon.Contains("figs"))
	assert.Equal(t, []string{"few", "fig"}, lexicon.Words(3))
}

func TestReadIndexRejectsCorruptData(t *testing.T) {
	var valid bytes.Buffer
	_, err := WriteIndex(&valid, []string{"few", "fig"})
	require.NoError(t, err)

	testCases := []struct {
		name string
		data []byte
	}{
		{"truncated header", valid.Bytes()[:3]},
		{"truncated block", valid.Bytes()[:len(valid.Bytes())-2]},
		{"zero word length", []byte{0, 0, 1, 0, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lexicon := spell.NewLexicon()
			_, err := ReadIndex(bytes.NewReader(tc.data), lexicon)
			assert.Error(t, err)
		})
	}
}

func TestCompileAndLoadIndexFile(t *testing.T) {
	dir := t.TempDir()
	wordList := filepath.Join(dir, "words.txt")
	indexPath := filepath.Join(dir, "words.idx")

	require.NoError(t, os.WriteFile(wordList, []byte("have\nfew\nfig\npolymorphism\n"), 0644))

	stats, err := CompileIndexFile(wordList, indexPath)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Words)

	checker := spell.New()
	loaded, err := LoadIndexFile(indexPath, checker)
	require.NoError(t, err)
	assert.Equal(t, stats, loaded)

	assert.True(t, checker.Exists("polymorphism"))
	assert.False(t, checker.Exists("polymorphisms"))

	// Indexed words count as training input, so corrections work with
	// no separate corpus.
	assert.Equal(t, []string{"polymorphism"}, checker.Suggest("polymrphism"))
}
