// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling recognition and correction server
and CLI [DBG] application.

SpellServe answers whether a token is a recognized word and, for
misspelled tokens, produces a probability-ranked list of likely
intended spellings using single-edit candidate generation. It can
operate as a MessagePack IPC server for integration with editors, or as
a CLI application for testing and debugging.

The lexicon is a compact length-bucketed store of sorted fixed-width
word blocks searched by binary search. Suggestions are ranked by token
frequencies observed over a training corpus.

# Usage

Start the server with the configured lexicon and corpus:

	spellserve

Use a compiled index and enable debug mode:

	spellserve -index data/lexicon.idx -d

Run in CLI mode for interactive testing:

	spellserve -c -limit 5

Seed files contain one word per line; corpus files are free text, one
training line at a time. Compiled index files are produced offline by
the spellc tool and load without re-sorting.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 64
	max_text_len = 1024

	[dict]
	index_path = ""
	seed_path = "data/lexicon.txt"
	corpus_path = "data/corpus.txt"

	[cli]
	default_limit = 10
	max_word_len = 48

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Each request
carries an id, an op and the text to operate on:

	{"id": "q1", "op": "check", "t": "polymorphism"}
	{"id": "q2", "op": "suggest", "t": "polymrphism", "l": 5}
	{"id": "q3", "op": "analyze", "t": "This sentense has errorrs"}

Responses echo the id and carry the result plus timing in microseconds:

	{"id": "q2", "s": ["polymorphism"], "c": 1, "us": 114}

Unknown ops, empty text and oversized text produce error responses with
a status code; the server never terminates on a bad request.

# CLI Mode

CLI mode reads words or sentences from stdin. Single words are checked
and corrected with frequency information; sentences get a full analysis
report of every unrecognized token. This mode is primarily intended for
development and testing new features before deploying to server mode.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/internal/cli"
	"github.com/spellserve/spellserve/internal/logger"
	"github.com/spellserve/spellserve/internal/utils"
	"github.com/spellserve/spellserve/pkg/config"
	"github.com/spellserve/spellserve/pkg/dictionary"
	"github.com/spellserve/spellserve/pkg/server"
	"github.com/spellserve/spellserve/pkg/spell"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
	gh      = "https://github.com/spellserve/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary loading and the server or CLI loop.
// It does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	indexPath := flag.String("index", "", "Compiled lexicon index file (overrides config)")
	seedPath := flag.String("seed", "", "Seed word list, one word per line (overrides config)")
	corpusPath := flag.String("corpus", "", "Training corpus file (overrides config)")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	if *indexPath != "" {
		cfg.Dict.IndexPath = *indexPath
	}
	if *seedPath != "" {
		cfg.Dict.SeedPath = *seedPath
	}
	if *corpusPath != "" {
		cfg.Dict.CorpusPath = *corpusPath
	}
	if *limit > 0 {
		cfg.CLI.DefaultLimit = *limit
	}

	checker := spell.New()
	if err := loadSources(cfg, checker); err != nil {
		log.Fatalf("Failed to load dictionary sources: %v", err)
		os.Exit(1)
	}
	log.Debugf("Checker ready: %d words, %d distinct tokens", checker.WordCount(), checker.TokenCount())

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(checker, cfg.CLI.DefaultLimit, cfg.CLI.MaxWordLen)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(cfg)

	srv := server.NewServer(checker, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// loadSources populates the checker: compiled index when configured,
// plain seed file otherwise, then the training corpus.
func loadSources(cfg *config.Config, checker *spell.Checker) error {
	if cfg.Dict.IndexPath != "" && utils.FileExists(cfg.Dict.IndexPath) {
		stats, err := dictionary.LoadIndexFile(cfg.Dict.IndexPath, checker)
		if err != nil {
			return err
		}
		log.Debugf("Index %s: %d buckets, %d words", cfg.Dict.IndexPath, stats.Buckets, stats.Words)
	} else if cfg.Dict.SeedPath != "" && utils.FileExists(cfg.Dict.SeedPath) {
		if _, err := dictionary.LoadSeedFile(cfg.Dict.SeedPath, checker); err != nil {
			return err
		}
	} else {
		log.Warn("No lexicon source found, running with empty dict...")
	}

	if cfg.Dict.CorpusPath != "" && utils.FileExists(cfg.Dict.CorpusPath) {
		if _, err := dictionary.LoadCorpusFile(cfg.Dict.CorpusPath, checker); err != nil {
			return err
		}
	}
	return nil
}

// showVersionInfo prints styled version output.
func showVersionInfo() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ SpellServe ] Recognizes and corrects misspelled words!")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(cfg *config.Config) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	if cfg.Dict.IndexPath != "" {
		log.Infof("lexicon index: ( %s )", cfg.Dict.IndexPath)
	} else {
		log.Infof("seed file: ( %s )", cfg.Dict.SeedPath)
	}
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
