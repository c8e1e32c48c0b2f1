package main

import (
	"fmt"

	"github.com/fwojciec/sift"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := sift.TuningRunFilter{Limit: c.Limit}
	if c.Fingerprint != "" {
		filter.CorpusFingerprint = &c.Fingerprint
	}

	runs, err := deps.Runs.FindTuningRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No tuning runs recorded. Use 'sift tune --record' to save one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %.2f%% -> %.2f%%  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.CorpusFingerprint,
			r.InitialScore, r.BestScore, r.BestCoeffs.String())
	}

	return nil
}
