package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
	siftslog "github.com/fwojciec/sift/slog"
	"github.com/fwojciec/sift/tune"
)

// Run executes the tune command.
func (c *TuneCmd) Run(deps *Dependencies) error {
	var initial *sift.Coefficients
	if len(c.Coeffs) > 0 {
		coeffs, err := sift.ParseCoefficients(c.Coeffs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
			return err
		}
		initial = &coeffs
	}

	corpus, err := deps.Loader.Load(deps.Ctx, c.Corpus)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	scorer := deps.Scorer
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		scorer = siftslog.NewLoggingCorpusScorer(scorer, logger)
	}

	tuner := &tune.Tuner{
		Scorer:     scorer,
		Pairs:      corpus.Pairs,
		Initial:    initial,
		Iterations: c.Iterations,
		Seed:       c.Seed,
	}

	startedAt := time.Now()
	res, err := tuner.Tune(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}
	finishedAt := time.Now()

	fmt.Fprintf(deps.Stdout, "corpus: %s (%d cases, fingerprint %s)\n", corpus.Dir, len(corpus.Pairs), corpus.Fingerprint)
	fmt.Fprintf(deps.Stdout, "initial: %s -> %.2f%%\n", res.Initial, res.InitialScore)
	fmt.Fprintf(deps.Stdout, "best: %s -> %.2f%% (%d trials)\n", res.Best, res.BestScore, res.Trials)

	if c.Record {
		run := &sift.TuningRun{
			CorpusDir:         corpus.Dir,
			CorpusFingerprint: corpus.Fingerprint,
			Iterations:        c.Iterations,
			Seed:              c.Seed,
			InitialCoeffs:     res.Initial,
			BestCoeffs:        res.Best,
			InitialScore:      res.InitialScore,
			BestScore:         res.BestScore,
			StartedAt:         startedAt,
			FinishedAt:        finishedAt,
		}
		if err := deps.Runs.CreateTuningRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "recorded run %s\n", run.ID)
	}

	return nil
}
