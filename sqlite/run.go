package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/sift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sift.TuningRunService = (*TuningRunService)(nil)

// TuningRunService implements sift.TuningRunService using SQLite.
type TuningRunService struct {
	db *DB
}

// NewTuningRunService creates a new TuningRunService.
func NewTuningRunService(db *DB) *TuningRunService {
	return &TuningRunService{db: db}
}

// CreateTuningRun persists a completed run.
func (s *TuningRunService) CreateTuningRun(ctx context.Context, run *sift.TuningRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	initialCoeffs, err := json.Marshal(run.InitialCoeffs)
	if err != nil {
		return err
	}
	bestCoeffs, err := json.Marshal(run.BestCoeffs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tuning_runs (id, corpus_dir, corpus_fingerprint, iterations, seed,
			initial_coeffs, best_coeffs, initial_score, best_score, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.CorpusDir, run.CorpusFingerprint, run.Iterations, run.Seed,
		string(initialCoeffs), string(bestCoeffs), run.InitialScore, run.BestScore,
		run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339))

	return err
}

// FindTuningRuns retrieves runs matching the filter, most recent first.
func (s *TuningRunService) FindTuningRuns(ctx context.Context, filter sift.TuningRunFilter) ([]*sift.TuningRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, corpus_dir, corpus_fingerprint, iterations, seed,
		initial_coeffs, best_coeffs, initial_score, best_score, started_at, finished_at
		FROM tuning_runs WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CorpusFingerprint != nil {
		query.WriteString(" AND corpus_fingerprint = ?")
		args = append(args, *filter.CorpusFingerprint)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*sift.TuningRun
	for rows.Next() {
		run, err := scanTuningRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FindTuningRunByID retrieves a single run.
// Returns ENOTFOUND if the run does not exist.
func (s *TuningRunService) FindTuningRunByID(ctx context.Context, id string) (*sift.TuningRun, error) {
	runs, err := s.FindTuningRuns(ctx, sift.TuningRunFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, sift.Errorf(sift.ENOTFOUND, "tuning run not found")
	}
	return runs[0], nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTuningRun(row rowScanner) (*sift.TuningRun, error) {
	var run sift.TuningRun
	var initialCoeffs, bestCoeffs, startedAt, finishedAt string

	err := row.Scan(&run.ID, &run.CorpusDir, &run.CorpusFingerprint, &run.Iterations, &run.Seed,
		&initialCoeffs, &bestCoeffs, &run.InitialScore, &run.BestScore, &startedAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sift.Errorf(sift.ENOTFOUND, "tuning run not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(initialCoeffs), &run.InitialCoeffs); err != nil {
		return nil, fmt.Errorf("failed to parse initial coefficients: %w", err)
	}
	if err := json.Unmarshal([]byte(bestCoeffs), &run.BestCoeffs); err != nil {
		return nil, fmt.Errorf("failed to parse best coefficients: %w", err)
	}

	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &run, nil
}
