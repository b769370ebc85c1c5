// Copyright 2026 The RackServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the rackserve CLI.

RackServe finds every word in a dictionary that can be spelled from a
fixed rack of letters, using no more copies of each letter than the rack
supplies. The search runs across a worker pool and reports progress and
the current longest matches while it is still going, then prints a final
best-words line, longest first.

# Usage

Search a rack against the default word list:

	rackserve letterpress

Use a custom word list and four workers:

	rackserve -dict /usr/share/dict/words -workers 4 letterpress

Export the full result set as msgpack:

	rackserve -out results.bin letterpress

# Configuration

Runtime configuration is managed through a TOML file that is created
with defaults when missing:

	[solver]
	block_size = 1000
	workers = 0
	top_k = 10

	[report]
	poll_interval_ms = 10

Flags override the file for a single run.

# Output

An initial line names the working letters, another the dictionary size
after filtering. While the search runs, progress lines report the
percentage of words dispatched so far and top-N lines report the current
longest matches whenever the set changes. The final line lists every
collected word, longest first, comma-joined. Ctrl+C interrupts the
search but still prints the final line from whatever was collected.

# Command Line Flags

	-dict string
	    Path to the word list, one word per line (default "words.txt")
	-config string
	    Path to the TOML config file (default "rackserve.toml")
	-block int
	    Words per work block (overrides config)
	-workers int
	    Worker pool size, 0 for CPU count (overrides config)
	-k int
	    Longest matches tracked by the live reporter (overrides config)
	-out string
	    Write the full result set to this file as msgpack
	-d  Enable debug mode with detailed logging
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/raklib/rackserve/internal/logger"
	"github.com/raklib/rackserve/internal/utils"
	"github.com/raklib/rackserve/pkg/config"
	"github.com/raklib/rackserve/pkg/dictionary"
	"github.com/raklib/rackserve/pkg/rack"
	"github.com/raklib/rackserve/pkg/report"
	"github.com/raklib/rackserve/pkg/solve"
)

const (
	Version = "0.3.0"
	AppName = "rackserve"
	gh      = "https://github.com/raklib/rackserve"
)

// main parses flags and wires the other packages together; the search
// itself lives in pkg/solve.
func main() {
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "words.txt", "Path to the word list, one word per line")
	configPath := flag.String("config", "rackserve.toml", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	blockSize := flag.Int("block", 0, fmt.Sprintf("Words per work block (default %d from config)", defaults.Solver.BlockSize))
	workers := flag.Int("workers", 0, "Worker pool size (default: number of CPUs)")
	topK := flag.Int("k", 0, fmt.Sprintf("Longest matches tracked by the live reporter (default %d from config)", defaults.Solver.TopK))
	outPath := flag.String("out", "", "Write the full result set to this file as msgpack")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	letters := flag.Arg(0)
	if letters == "" {
		log.Fatal("No letters supplied")
	}

	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(*configPath))
	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *blockSize > 0 {
		cfg.Solver.BlockSize = *blockSize
	}
	if *workers > 0 {
		cfg.Solver.Workers = *workers
	}
	if *topK > 0 {
		cfg.Solver.TopK = *topK
	}

	rk, err := rack.New(letters)
	if err != nil {
		log.Fatalf("Bad rack %q: %v", letters, err)
	}

	mainLog := logger.Default("main")
	mainLog.Infof("Working with %s", rk.Letters())

	dict, err := dictionary.Load(*dictPath, rk.Size())
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	mainLog.Infof("Evaluating against %d words", dict.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solver := solve.New(rk, dict,
		solve.Params{
			BlockSize:    cfg.Solver.BlockSize,
			Workers:      cfg.Solver.Workers,
			TopK:         cfg.Solver.TopK,
			PollInterval: cfg.PollInterval(),
		},
		solve.WithLogger(mainLog),
		solve.WithTopLogger(logger.Default("top words")),
		solve.WithProgressLogger(logger.Default("progress")),
	)

	res := solver.Run(ctx)

	mainLog.Infof("Best words: %s", report.Format(res.Words))
	if res.EvalErrors > 0 {
		mainLog.Warnf("%d words skipped after evaluation errors", res.EvalErrors)
	}

	if *outPath != "" {
		summary := report.NewSummary(rk.Letters(), res.Evaluated, res.EvalErrors, res.State.String(), res.Words)
		if err := report.WriteFile(*outPath, summary); err != nil {
			mainLog.Errorf("Failed to export results: %v", err)
		} else {
			mainLog.Debugf("Exported %d words to %s", len(res.Words), *outPath)
		}
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ RackServe ] Finds the longest words your rack can spell!")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
