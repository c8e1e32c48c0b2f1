package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/levenshtein"
)

// Run executes the score command.
func (c *ScoreCmd) Run(deps *Dependencies) error {
	coeffs, err := resolveCoefficients(c.Coeffs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	corpus, err := deps.Loader.Load(deps.Ctx, c.Corpus, c.Cases...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	score, err := deps.Scorer.DeviationScore(deps.Ctx, corpus.Pairs, coeffs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "coefficients: %s\n", coeffs)
	fmt.Fprintf(deps.Stdout, "deviation: %.2f%% (%d cases, corpus %s)\n", score, len(corpus.Pairs), corpus.Fingerprint)

	if c.Baselines {
		names := make([]string, 0, len(deps.Baselines))
		for name := range deps.Baselines {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			baseline, err := levenshtein.DeviationScoreWith(deps.Ctx, corpus.Pairs, deps.Baselines[name])
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", name, sift.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "baseline %s: %.2f%%\n", name, baseline)
		}
	}

	return nil
}

// resolveCoefficients parses CLI-supplied coefficients, falling back to the
// baseline vector when none are given.
func resolveCoefficients(values []float64) (sift.Coefficients, error) {
	if len(values) == 0 {
		return sift.DefaultCoefficients(), nil
	}
	return sift.ParseCoefficients(values)
}
