// Package slog provides logging decorators for sift interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
)

// Ensure LoggingCorpusScorer implements sift.CorpusScorer.
var _ sift.CorpusScorer = (*LoggingCorpusScorer)(nil)

// LoggingCorpusScorer wraps a CorpusScorer with per-evaluation logging,
// giving the tuning loop visible progress without touching its logic.
type LoggingCorpusScorer struct {
	next   sift.CorpusScorer
	logger *slog.Logger
}

// NewLoggingCorpusScorer creates a new LoggingCorpusScorer.
func NewLoggingCorpusScorer(next sift.CorpusScorer, logger *slog.Logger) *LoggingCorpusScorer {
	return &LoggingCorpusScorer{next: next, logger: logger}
}

// DeviationScore delegates to the wrapped scorer and logs the trial.
func (s *LoggingCorpusScorer) DeviationScore(ctx context.Context, pairs []sift.CasePair, coeffs sift.Coefficients) (float64, error) {
	begin := time.Now()
	score, err := s.next.DeviationScore(ctx, pairs, coeffs)
	if err != nil {
		s.logger.Error("deviation score failed",
			"coefficients", coeffs.String(),
			"error", err,
		)
		return score, err
	}
	s.logger.Info("deviation score",
		"coefficients", coeffs.String(),
		"score", score,
		"pairs", len(pairs),
		"duration", time.Since(begin),
	)
	return score, nil
}
