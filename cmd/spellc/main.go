// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// spellc is the offline lexicon compiler. It reads a raw word list,
// one word per line, and writes the compact per-length index consumed
// by spellserve: per word length, a sorted deduplicated block of
// fixed-width words that loads without re-sorting.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/pkg/dictionary"
)

func main() {
	wordList := flag.String("in", "", "Raw word list, one word per line")
	indexPath := flag.String("out", "", "Output index file (default: <in> with .idx extension)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}

	if *wordList == "" {
		log.Error("Missing -in word list")
		flag.Usage()
		os.Exit(1)
	}

	out := *indexPath
	if out == "" {
		out = strings.TrimSuffix(*wordList, ".txt") + ".idx"
	}

	stats, err := dictionary.CompileIndexFile(*wordList, out)
	if err != nil {
		log.Fatalf("Failed to compile index: %v", err)
		os.Exit(1)
	}

	log.Infof("Compiled %s", out)
	log.Infof("buckets: %d", stats.Buckets)
	log.Infof("words: %d", stats.Words)
}
