package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/pkg/spell"
)

// Compiled index layout, little endian, one record per length bucket:
//
//	wordLen uint16 | count uint32 | count * wordLen bytes
//
// Records are written in ascending word length, words sorted and
// deduplicated within each record, so the loader can hand blocks to the
// lexicon without re-sorting.

// maxBucketWords is a sanity bound on a single bucket's word count.
const maxBucketWords = 1_000_000

// IndexStats summarizes a compiled index.
type IndexStats struct {
	Buckets int
	Words   int
}

// WriteIndex buckets, dedups and sorts raw words, then writes the
// compiled index to w.
func WriteIndex(w io.Writer, words []string) (IndexStats, error) {
	buckets := make(map[int][]string)
	seen := make(map[string]bool)
	for _, word := range words {
		word = strings.TrimRight(word, "\r\n")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		buckets[len(word)] = append(buckets[len(word)], word)
	}

	lengths := make([]int, 0, len(buckets))
	for n := range buckets {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	var stats IndexStats
	for _, n := range lengths {
		bucket := buckets[n]
		sort.Strings(bucket)

		if err := binary.Write(w, binary.LittleEndian, uint16(n)); err != nil {
			return stats, fmt.Errorf("failed to write bucket header: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(bucket))); err != nil {
			return stats, fmt.Errorf("failed to write bucket header: %w", err)
		}
		for _, word := range bucket {
			if _, err := io.WriteString(w, word); err != nil {
				return stats, fmt.Errorf("failed to write bucket words: %w", err)
			}
		}

		stats.Buckets++
		stats.Words += len(bucket)
	}
	return stats, nil
}

// CompileIndexFile reads a raw word list, one word per line, and writes
// the compiled index next to it.
func CompileIndexFile(wordListPath, indexPath string) (IndexStats, error) {
	file, err := os.Open(wordListPath)
	if err != nil {
		return IndexStats{}, fmt.Errorf("failed to open word list %s: %w", wordListPath, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return IndexStats{}, fmt.Errorf("failed to read word list %s: %w", wordListPath, err)
	}

	out, err := os.Create(indexPath)
	if err != nil {
		return IndexStats{}, fmt.Errorf("failed to create index file %s: %w", indexPath, err)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	stats, err := WriteIndex(writer, words)
	if err != nil {
		return stats, err
	}
	if err := writer.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush index file %s: %w", indexPath, err)
	}

	log.Debugf("Compiled %s: %d buckets, %d words", indexPath, stats.Buckets, stats.Words)
	return stats, nil
}

// ReadIndex installs every bucket record from r into the lexicon.
func ReadIndex(r io.Reader, lexicon *spell.Lexicon) (IndexStats, error) {
	var stats IndexStats
	for {
		var wordLen uint16
		if err := binary.Read(r, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				return stats, nil
			}
			return stats, fmt.Errorf("failed to read bucket header: %w", err)
		}
		var count uint32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return stats, fmt.Errorf("failed to read bucket header: %w", err)
		}

		if wordLen == 0 {
			return stats, fmt.Errorf("invalid bucket word length 0")
		}
		if count > maxBucketWords {
			return stats, fmt.Errorf("suspicious bucket word count %d for length %d", count, wordLen)
		}

		block := make([]byte, int(wordLen)*int(count))
		if _, err := io.ReadFull(r, block); err != nil {
			return stats, fmt.Errorf("failed to read bucket block for length %d: %w", wordLen, err)
		}
		if err := lexicon.SetBucket(int(wordLen), block); err != nil {
			return stats, fmt.Errorf("failed to install bucket: %w", err)
		}

		stats.Buckets++
		stats.Words += int(count)
	}
}

// LoadIndexFile loads a compiled index file into the checker's lexicon
// and counts every indexed word as a frequency observation, mirroring
// what line-based seeding does.
func LoadIndexFile(path string, checker *spell.Checker) (IndexStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return IndexStats{}, fmt.Errorf("failed to open index file %s: %w", path, err)
	}
	defer file.Close()

	stats, err := ReadIndex(bufio.NewReader(file), checker.Lexicon())
	if err != nil {
		return stats, err
	}

	// Seeded words count as training input, same as line-based seeding.
	lexicon := checker.Lexicon()
	for _, n := range lexicon.Lengths() {
		for _, word := range lexicon.Words(n) {
			checker.Train(word)
		}
		log.Debugf("Bucket len=%d: %d words", n, lexicon.BucketCount(n))
	}
	return stats, nil
}
