package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"Hello World", []string{"hello", "world"}, "Lowercase and split"},
		{"well-known", []string{"well", "known"}, "Hyphen splits compounds"},
		{"state-of-the-art", []string{"state", "of", "the", "art"}, "Multiple hyphens"},
		{"Hello, world!", []string{"hello", "world"}, "Punctuation stripped without a space"},
		{"don't", []string{"dont"}, "Apostrophe stripped, token stays joined"},
		{"“quoted” ‘words’", []string{"quoted", "words"}, "Curly quote variants"},
		{"a  b\t\nc", []string{"a", "b", "c"}, "Runs of whitespace collapse"},
		{"100% (sure)", []string{"100", "sure"}, "Percent and parentheses"},
		{"foo;bar:baz", []string{"foobarbaz"}, "Separators are removed, not replaced"},
		{"`tilde~ {brace} =eq_ under_", []string{"tilde", "brace", "eq", "under"}, "Remaining punctuation set"},
		{"", []string{""}, "Empty input yields single empty token"},
		{"?!.,", []string{""}, "All-punctuation input yields single empty token"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Normalize(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	input := "This sentense will havv a fiw speling errorrs."
	first := Normalize(input)
	second := Normalize(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize is not deterministic: %v vs %v", first, second)
	}
}

func TestHasNumericPrefix(t *testing.T) {
	testCases := []struct {
		token       string
		expected    bool
		description string
	}{
		{"42", true, "Plain integer"},
		{"3rd", true, "Ordinal with numeric prefix"},
		{"10km", true, "Unit-suffixed figure"},
		{"abc", false, "Plain word"},
		{"x3", false, "Digit not at start"},
		{"", false, "Empty token"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := HasNumericPrefix(tc.token); got != tc.expected {
				t.Errorf("HasNumericPrefix(%q) = %v, want %v", tc.token, got, tc.expected)
			}
		})
	}
}
