// Package tune searches for the coefficient vector that minimizes corpus
// deviation. It specializes the generic annealer with a fixed-step local
// perturbation: the objective involves a discrete clustering search, so it
// is not differentiable and only zeroth-order moves are valid.
package tune

import (
	"context"
	"math/rand/v2"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/anneal"
)

// step is the fixed perturbation applied to one coefficient per move.
const step = 0.5

// Result reports the outcome of one tuning run.
type Result struct {
	// Initial is the starting vector and InitialScore its deviation.
	Initial      sift.Coefficients
	InitialScore float64

	// Best is the best-seen vector and BestScore its deviation. BestScore
	// never exceeds InitialScore.
	Best      sift.Coefficients
	BestScore float64

	// Trials is the number of coefficient vectors evaluated.
	Trials int
}

// Tuner minimizes a CorpusScorer over a fixed set of test cases. The corpus
// is loaded once by the caller and reused across all trials; only the
// coefficient vector changes between evaluations.
type Tuner struct {
	// Scorer evaluates candidate vectors.
	Scorer sift.CorpusScorer

	// Pairs is the corpus the scorer runs against.
	Pairs []sift.CasePair

	// Initial is the starting vector. Zero value means DefaultCoefficients.
	Initial *sift.Coefficients

	// Iterations caps the number of trials. Zero lets the annealing
	// schedule decide.
	Iterations int

	// Seed makes a run reproducible.
	Seed int64
}

// Tune runs the search and returns the best-seen coefficients. The search
// space is intentionally unconstrained: a move may push a coefficient
// negative, and the objective is left to judge the result.
func (t *Tuner) Tune(ctx context.Context) (*Result, error) {
	if t.Scorer == nil {
		return nil, sift.Errorf(sift.EINVALID, "tuner requires a corpus scorer")
	}
	if len(t.Pairs) == 0 {
		return nil, sift.Errorf(sift.EEMPTYCORPUS, "tuner requires a non-empty corpus")
	}

	initial := sift.DefaultCoefficients()
	if t.Initial != nil {
		initial = *t.Initial
	}

	res, err := anneal.Anneal(anneal.Config[sift.Coefficients]{
		Initial:  initial,
		Neighbor: Neighbor,
		Cost: func(c sift.Coefficients) (float64, error) {
			return t.Scorer.DeviationScore(ctx, t.Pairs, c)
		},
		MaxTrials: t.Iterations,
		Seed:      t.Seed,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Initial:      initial,
		InitialScore: res.InitialCost,
		Best:         res.Best,
		BestScore:    res.BestCost,
		Trials:       res.Trials,
	}, nil
}

// Neighbor perturbs one coefficient, picked uniformly at random, by ±step
// with equal probability. All other coefficients are unchanged.
func Neighbor(c sift.Coefficients, rng *rand.Rand) sift.Coefficients {
	v := c.Vector()
	i := rng.IntN(sift.CoefficientCount)
	if rng.IntN(2) == 0 {
		v[i] += step
	} else {
		v[i] -= step
	}
	return sift.CoefficientsFromVector(v)
}
