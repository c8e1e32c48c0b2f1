package sift

import (
	"context"
	"time"
)

// TuningRun records one coefficient search: where it started, where it
// ended, and which corpus it scored against.
type TuningRun struct {
	ID                string       `json:"id"`
	CorpusDir         string       `json:"corpusDir"`
	CorpusFingerprint string       `json:"corpusFingerprint"`
	Iterations        int          `json:"iterations"`
	Seed              int64        `json:"seed"`
	InitialCoeffs     Coefficients `json:"initialCoeffs"`
	BestCoeffs        Coefficients `json:"bestCoeffs"`
	InitialScore      float64      `json:"initialScore"`
	BestScore         float64      `json:"bestScore"`
	StartedAt         time.Time    `json:"startedAt"`
	FinishedAt        time.Time    `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *TuningRun) Validate() error {
	if r.CorpusDir == "" {
		return Errorf(EINVALID, "tuning run corpus directory required")
	}
	if r.CorpusFingerprint == "" {
		return Errorf(EINVALID, "tuning run corpus fingerprint required")
	}
	if r.Iterations < 1 {
		return Errorf(EINVALID, "tuning run iteration count must be positive")
	}
	return nil
}

// TuningRunService stores and retrieves tuning run history.
type TuningRunService interface {
	// CreateTuningRun persists a completed run. The ID is assigned by the
	// service.
	CreateTuningRun(ctx context.Context, run *TuningRun) error

	// FindTuningRuns retrieves runs matching the filter, most recent first.
	FindTuningRuns(ctx context.Context, filter TuningRunFilter) ([]*TuningRun, error)
}

// TuningRunFilter represents a filter for FindTuningRuns.
type TuningRunFilter struct {
	ID                *string `json:"id"`
	CorpusFingerprint *string `json:"corpusFingerprint"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
