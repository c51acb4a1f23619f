// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/internal/logger"
	"github.com/spellserve/spellserve/pkg/spell"
)

var clog = logger.Default("cli")

// InputHandler processes user input from stdin. Single words are
// checked and corrected; lines with several words get a full analysis
// report.
type InputHandler struct {
	checker      *spell.Checker
	suggestLimit int
	maxWordLen   int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(checker *spell.Checker, limit, maxWordLen int) *InputHandler {
	return &InputHandler{
		checker:      checker,
		suggestLimit: limit,
		maxWordLen:   maxWordLen,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	clog.Print("SpellServe CLI")
	reader := bufio.NewReader(os.Stdin)
	clog.Print("type a word or a sentence and press Enter (Ctrl+C to exit):")

	for {
		clog.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput routes a line to the word or sentence path.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if strings.ContainsAny(line, " \t") {
		h.handleSentence(line)
		return
	}
	h.handleWord(line)
}

// handleWord checks a single word and prints ranked corrections.
func (h *InputHandler) handleWord(word string) {
	if len(word) > h.maxWordLen {
		clog.Errorf("Word too long: %s", word)
		return
	}

	if h.checker.Exists(word) {
		clog.Printf("'%s' is recognized", word)
		return
	}

	start := time.Now()
	suggestions := h.checker.Suggest(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if len(suggestions) == 0 {
		clog.Warnf("No suggestions found for: '%s'", word)
		return
	}
	if len(suggestions) > h.suggestLimit {
		suggestions = suggestions[:h.suggestLimit]
	}

	clog.Printf("Found %d suggestions for '%s':", len(suggestions), word)
	for i, s := range suggestions {
		freq, _ := h.checker.Frequency(s)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
		clog.Printf("%2d. %-40s (freq: %8d)", i+1, clWord, freq)
	}
}

// handleSentence runs the analyzer and prints one block per
// unrecognized token.
func (h *InputHandler) handleSentence(sentence string) {
	start := time.Now()
	report := h.checker.Analyze(sentence)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for sentence analysis", elapsed)

	if len(report) == 0 {
		clog.Printf("No misspellings found")
		return
	}

	clog.Printf("Found %d unrecognized tokens:", len(report))
	for token, suggestions := range report {
		if len(suggestions) > h.suggestLimit {
			suggestions = suggestions[:h.suggestLimit]
		}
		if len(suggestions) == 0 {
			clog.Printf("  %-24s -> no suggestions", token)
			continue
		}
		clog.Printf("  %-24s -> %s", token, strings.Join(suggestions, ", "))
	}
}
