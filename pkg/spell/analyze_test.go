package spell

import (
	"reflect"
	"testing"
)

func newAnalysisChecker() *Checker {
	checker := New()
	checker.Initialize(
		[]string{"this", "sentence", "will", "have", "a", "few", "spelling", "errors"},
		[]string{
			"this sentence will have a few spelling errors",
			"a sentence may have spelling errors",
			"few errors here",
		},
	)
	return checker
}

func TestAnalyzeScenario(t *testing.T) {
	checker := newAnalysisChecker()

	report := checker.Analyze("This sentense will havv a fiw speling errorrs.")

	expectations := map[string]string{
		"sentense": "sentence",
		"havv":     "have",
		"fiw":      "few",
		"speling":  "spelling",
		"errorrs":  "errors",
	}
	for token, want := range expectations {
		suggestions, ok := report[token]
		if !ok {
			t.Errorf("token %q missing from analysis", token)
			continue
		}
		if len(suggestions) == 0 || suggestions[0] != want {
			t.Errorf("report[%q] = %v, want %q first", token, suggestions, want)
		}
	}

	for _, recognized := range []string{"this", "will", "a"} {
		if _, ok := report[recognized]; ok {
			t.Errorf("recognized token %q present in analysis", recognized)
		}
	}
}

func TestAnalyzeSkipsNumericTokens(t *testing.T) {
	checker := newAnalysisChecker()

	report := checker.Analyze("have 42 errorrs on the 3rd of may")

	for _, numeric := range []string{"42", "3rd"} {
		if _, ok := report[numeric]; ok {
			t.Errorf("numeric token %q present in analysis", numeric)
		}
	}
	if _, ok := report["errorrs"]; !ok {
		t.Error("misspelled token dropped alongside numerics")
	}
}

func TestAnalyzeDeduplicatesTokens(t *testing.T) {
	checker := newAnalysisChecker()

	report := checker.Analyze("havv havv havv")
	if len(report) != 1 {
		t.Errorf("len(report) = %d for repeated token, want 1", len(report))
	}
	if suggestions := report["havv"]; len(suggestions) == 0 || suggestions[0] != "have" {
		t.Errorf("report[\"havv\"] = %v, want [have ...]", suggestions)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	checker := newAnalysisChecker()
	sentence := "This sentense will havv a fiw speling errorrs."

	first := checker.Analyze(sentence)
	second := checker.Analyze(sentence)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze not idempotent:\n%v\n%v", first, second)
	}
}

func TestAnalyzeCleanSentence(t *testing.T) {
	checker := newAnalysisChecker()

	report := checker.Analyze("this sentence will have a few spelling errors")
	if len(report) != 0 {
		t.Errorf("report = %v for fully recognized sentence, want empty", report)
	}
}
