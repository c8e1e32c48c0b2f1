package mock

import (
	"context"

	"github.com/fwojciec/sift"
)

var _ sift.CorpusLoader = (*CorpusLoader)(nil)

// CorpusLoader is a mock implementation of sift.CorpusLoader.
type CorpusLoader struct {
	LoadFn func(ctx context.Context, dir string, names ...string) (*sift.Corpus, error)
}

func (l *CorpusLoader) Load(ctx context.Context, dir string, names ...string) (*sift.Corpus, error) {
	return l.LoadFn(ctx, dir, names...)
}

var _ sift.CorpusScorer = (*CorpusScorer)(nil)

// CorpusScorer is a mock implementation of sift.CorpusScorer.
type CorpusScorer struct {
	DeviationScoreFn func(ctx context.Context, pairs []sift.CasePair, coeffs sift.Coefficients) (float64, error)
}

func (s *CorpusScorer) DeviationScore(ctx context.Context, pairs []sift.CasePair, coeffs sift.Coefficients) (float64, error) {
	return s.DeviationScoreFn(ctx, pairs, coeffs)
}
