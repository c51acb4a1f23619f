// Package dictionary feeds the spell core from files: line-based seed
// vocabulary and training corpus loaders, plus the compiled per-length
// binary index produced by spellc.
package dictionary

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/pkg/spell"
)

// maxLineSize bounds a single corpus line; prose lines way past this
// point to a malformed file.
const maxLineSize = 1 << 20

// LoadSeedFile reads a seed vocabulary file, one word per line, and
// feeds every line into the checker. Returns the number of lines fed.
func LoadSeedFile(path string, checker *spell.Checker) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	count := 0
	for scanner.Scan() {
		checker.AddWord(scanner.Text())
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	log.Debugf("Seed file %s loaded: %d lines, %d words in lexicon", path, count, checker.WordCount())
	return count, nil
}

// LoadCorpusFile reads a training corpus file and trains the checker's
// frequency model on every line. Returns the number of lines trained.
func LoadCorpusFile(path string, checker *spell.Checker) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	count := 0
	for scanner.Scan() {
		checker.Train(scanner.Text())
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	log.Debugf("Corpus file %s loaded: %d lines, %d distinct tokens", path, count, checker.TokenCount())
	return count, nil
}
