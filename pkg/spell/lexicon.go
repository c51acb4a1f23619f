/*
Package spell implements the recognition and correction core: a
length-bucketed lexicon with binary-search membership, a trie-backed
token frequency model, and a single-edit suggestion engine ranked by
observed frequency.
*/
package spell

import (
	"fmt"
	"sort"
	"strings"
)

// Lexicon stores recognized words bucketed by length. Each bucket is a
// single byte block of concatenated fixed-width words kept in ascending
// ASCII order, so membership is one map lookup plus a binary search
// over len(bucket)/wordLen slots. Buckets are append-only.
type Lexicon struct {
	buckets map[int][]byte
	words   int
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		buckets: make(map[int][]byte),
	}
}

// Add inserts a word into its length bucket, keeping the bucket sorted.
// Trailing line-ending noise from line-based seed sources is stripped
// first. Empty and already-present words are no-ops.
func (l *Lexicon) Add(word string) {
	word = strings.TrimRight(word, "\r\n")
	if word == "" || l.Contains(word) {
		return
	}

	n := len(word)
	bucket := l.buckets[n]
	count := len(bucket) / n

	idx := sort.Search(count, func(i int) bool {
		return string(bucket[i*n:(i+1)*n]) >= word
	})

	updated := make([]byte, 0, len(bucket)+n)
	updated = append(updated, bucket[:idx*n]...)
	updated = append(updated, word...)
	updated = append(updated, bucket[idx*n:]...)

	l.buckets[n] = updated
	l.words++
}

// Contains reports whether the word is recognized. The zero-length word
// is defined as never existing. Lookup is an exact match: binary search
// over the fixed-width slots of the word's length bucket.
func (l *Lexicon) Contains(word string) bool {
	n := len(word)
	if n == 0 {
		return false
	}
	bucket, ok := l.buckets[n]
	if !ok {
		return false
	}

	lo, hi := 0, len(bucket)/n-1
	for lo <= hi {
		mid := (lo + hi) / 2
		entry := string(bucket[mid*n : (mid+1)*n])
		switch {
		case entry == word:
			return true
		case entry < word:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return false
}

// SetBucket installs a pre-built block of fixed-width words as the
// bucket for the given length. The block must be a whole number of
// words, sorted ascending with no duplicates; compiled index files
// written by spellc satisfy this by construction.
func (l *Lexicon) SetBucket(length int, block []byte) error {
	if length <= 0 {
		return fmt.Errorf("invalid bucket word length %d", length)
	}
	if len(block)%length != 0 {
		return fmt.Errorf("bucket block size %d is not a multiple of word length %d", len(block), length)
	}

	count := len(block) / length
	for i := 1; i < count; i++ {
		prev := string(block[(i-1)*length : i*length])
		cur := string(block[i*length : (i+1)*length])
		if prev >= cur {
			return fmt.Errorf("bucket for length %d is not sorted at slot %d (%q >= %q)", length, i, prev, cur)
		}
	}

	if old, ok := l.buckets[length]; ok {
		l.words -= len(old) / length
	}
	l.buckets[length] = block
	l.words += count
	return nil
}

// Words returns the bucket for the given length as individual words,
// in stored order. Used by index loaders that need to replay installed
// buckets into the frequency model.
func (l *Lexicon) Words(length int) []string {
	if length <= 0 {
		return nil
	}
	bucket := l.buckets[length]
	words := make([]string, 0, len(bucket)/length)
	for i := 0; i+length <= len(bucket); i += length {
		words = append(words, string(bucket[i:i+length]))
	}
	return words
}

// WordCount returns the number of distinct words across all buckets.
func (l *Lexicon) WordCount() int {
	return l.words
}

// Lengths returns the bucket lengths present, ascending.
func (l *Lexicon) Lengths() []int {
	lengths := make([]int, 0, len(l.buckets))
	for n := range l.buckets {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	return lengths
}

// BucketCount returns the number of words in the bucket for the given
// length, zero if the bucket is absent.
func (l *Lexicon) BucketCount(length int) int {
	if length <= 0 {
		return 0
	}
	return len(l.buckets[length]) / length
}
