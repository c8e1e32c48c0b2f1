package main

import (
	"context"
	"io"

	"github.com/fwojciec/sift"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Loader    sift.CorpusLoader
	Scorer    sift.CorpusScorer
	Converter sift.Converter
	Runs      sift.TuningRunService
	Baselines map[string]sift.TextExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Score   ScoreCmd   `cmd:"" help:"Score the extraction pipeline against a corpus"`
	Extract ExtractCmd `cmd:"" help:"Extract the content region of a single HTML file"`
	Tune    TuneCmd    `cmd:"" help:"Search for coefficients that minimize corpus deviation"`
	Runs    RunsCmd    `cmd:"" help:"List recorded tuning runs"`
}

// ScoreCmd is the "score" subcommand.
type ScoreCmd struct {
	Corpus    string    `arg:"" help:"Corpus directory (one subdirectory per case)"`
	Coeffs    []float64 `short:"c" help:"Seven pipeline coefficients (defaults to the baseline vector)"`
	Cases     []string  `short:"n" name:"case" help:"Score only the named cases (repeatable)"`
	Baselines bool      `short:"b" help:"Also score the readability and trafilatura baselines"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File   string    `arg:"" help:"HTML file to extract content from"`
	Format string    `short:"f" default:"text" enum:"text,markdown" help:"Output format (text or markdown)"`
	Coeffs []float64 `short:"c" help:"Seven pipeline coefficients (defaults to the baseline vector)"`
}

// TuneCmd is the "tune" subcommand.
type TuneCmd struct {
	Corpus     string    `arg:"" help:"Corpus directory (one subdirectory per case)"`
	Coeffs     []float64 `short:"c" help:"Starting coefficients (defaults to the baseline vector)"`
	Iterations int       `short:"i" default:"200" help:"Trial budget for the search"`
	Seed       int64     `short:"s" help:"Random seed for a reproducible search"`
	Record     bool      `short:"r" help:"Save the run to tuning history"`
	Verbose    bool      `short:"v" help:"Log every trial to stderr"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit       int    `short:"l" default:"20" help:"Maximum number of runs to list"`
	Fingerprint string `help:"Only list runs for a corpus fingerprint"`
}
