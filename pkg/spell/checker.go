package spell

// Checker bundles a lexicon, a frequency model and a suggestion engine
// into one self-contained instance. Independent Checkers share nothing;
// there is no package-level dictionary state.
type Checker struct {
	lexicon *Lexicon
	freqs   *FrequencyModel
	engine  *Engine
}

// New creates an empty Checker. Feed it seed words and training text
// before querying; an unpopulated lexicon answers false for everything.
func New() *Checker {
	lexicon := NewLexicon()
	freqs := NewFrequencyModel()
	return &Checker{
		lexicon: lexicon,
		freqs:   freqs,
		engine:  NewEngine(lexicon, freqs),
	}
}

// Initialize applies the seed vocabulary and then the training corpus,
// in order. Seed words land in both the lexicon and the frequency
// model; training texts only feed the model. Queries issued before
// Initialize returns see a partially populated state and give wrong
// answers, so don't.
func (c *Checker) Initialize(seedWords, trainingTexts []string) {
	for _, word := range seedWords {
		c.AddWord(word)
	}
	for _, text := range trainingTexts {
		c.Train(text)
	}
}

// AddWord inserts one seed word into the lexicon and counts it as an
// observation. Incremental counterpart of Initialize for line-based
// loaders.
func (c *Checker) AddWord(word string) {
	c.lexicon.Add(word)
	c.freqs.Observe(word)
}

// Train feeds one text into the frequency model.
func (c *Checker) Train(text string) {
	c.freqs.Observe(text)
}

// Exists reports whether the word is in the lexicon.
func (c *Checker) Exists(word string) bool {
	return c.lexicon.Contains(word)
}

// Suggest returns ranked spelling suggestions for a word.
func (c *Checker) Suggest(word string) []string {
	return c.engine.Suggest(word)
}

// Frequency returns the observed count for a token and whether it was
// ever observed.
func (c *Checker) Frequency(token string) (int, bool) {
	return c.freqs.Count(token)
}

// Lexicon exposes the underlying word store, mainly so loaders can
// install compiled index buckets directly.
func (c *Checker) Lexicon() *Lexicon {
	return c.lexicon
}

// WordCount returns the number of recognized words.
func (c *Checker) WordCount() int {
	return c.lexicon.WordCount()
}

// TokenCount returns the number of distinct tokens observed in training.
func (c *Checker) TokenCount() int {
	return c.freqs.TokenCount()
}
