package mock

import (
	"context"

	"github.com/fwojciec/sift"
)

var _ sift.TuningRunService = (*TuningRunService)(nil)

// TuningRunService is a mock implementation of sift.TuningRunService.
type TuningRunService struct {
	CreateTuningRunFn func(ctx context.Context, run *sift.TuningRun) error
	FindTuningRunsFn  func(ctx context.Context, filter sift.TuningRunFilter) ([]*sift.TuningRun, error)
}

func (s *TuningRunService) CreateTuningRun(ctx context.Context, run *sift.TuningRun) error {
	return s.CreateTuningRunFn(ctx, run)
}

func (s *TuningRunService) FindTuningRuns(ctx context.Context, filter sift.TuningRunFilter) ([]*sift.TuningRun, error) {
	return s.FindTuningRunsFn(ctx, filter)
}
