package tune_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/dom"
	"github.com/fwojciec/sift/levenshtein"
	"github.com/fwojciec/sift/mock"
	"github.com/fwojciec/sift/tune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distanceScorer is a synthetic objective: the L1 distance from a target
// vector. Minimizing it drags the coefficients toward the target.
func distanceScorer(target sift.Coefficients) *mock.CorpusScorer {
	return &mock.CorpusScorer{
		DeviationScoreFn: func(_ context.Context, _ []sift.CasePair, c sift.Coefficients) (float64, error) {
			tv, cv := target.Vector(), c.Vector()
			sum := 0.0
			for i := range tv {
				sum += math.Abs(tv[i] - cv[i])
			}
			return sum, nil
		},
	}
}

func somePairs(t *testing.T) []sift.CasePair {
	t.Helper()

	exp, err := dom.ParseString("<body><p>Hello world</p></body>")
	require.NoError(t, err)
	src, err := dom.ParseString("<body><nav><a>Home</a></nav><p>Hello world</p></body>")
	require.NoError(t, err)

	return []sift.CasePair{{Name: "hello", Expected: exp, Source: src}}
}

func TestNeighbor_MovesExactlyOneCoefficientByHalf(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 8))
	base := sift.DefaultCoefficients()

	for i := 0; i < 100; i++ {
		next := tune.Neighbor(base, rng)

		bv, nv := base.Vector(), next.Vector()
		changed := 0
		for j := range bv {
			if bv[j] != nv[j] {
				changed++
				assert.InDelta(t, 0.5, math.Abs(bv[j]-nv[j]), 1e-12)
			}
		}
		assert.Equal(t, 1, changed)
	}
}

func TestNeighbor_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	base := sift.DefaultCoefficients()

	tune.Neighbor(base, rng)

	assert.Equal(t, sift.DefaultCoefficients(), base)
}

func TestTuner_ImprovesSyntheticObjective(t *testing.T) {
	t.Parallel()

	target := sift.CoefficientsFromVector([7]float64{2, 4, 2.5, 6, 2.5, 1, 0.5})

	tuner := &tune.Tuner{
		Scorer: distanceScorer(target),
		Pairs:  somePairs(t),
		Seed:   11,
	}

	res, err := tuner.Tune(context.Background())

	require.NoError(t, err)
	assert.Less(t, res.BestScore, res.InitialScore)
}

func TestTuner_NonRegression(t *testing.T) {
	t.Parallel()

	// Even a single-trial run must return a vector no worse than its
	// starting point: the search tracks best-seen, not last-visited.
	target := sift.DefaultCoefficients()

	for seed := int64(0); seed < 20; seed++ {
		tuner := &tune.Tuner{
			Scorer:     distanceScorer(target),
			Pairs:      somePairs(t),
			Iterations: 1,
			Seed:       seed,
		}

		res, err := tuner.Tune(context.Background())

		require.NoError(t, err)
		assert.LessOrEqual(t, res.BestScore, res.InitialScore, "seed %d", seed)
	}
}

func TestTuner_NonRegressionAgainstRealMetric(t *testing.T) {
	t.Parallel()

	tuner := &tune.Tuner{
		Scorer:     levenshtein.NewCorpusScorer(),
		Pairs:      somePairs(t),
		Iterations: 10,
		Seed:       5,
	}

	res, err := tuner.Tune(context.Background())

	require.NoError(t, err)
	assert.LessOrEqual(t, res.BestScore, res.InitialScore)
	assert.Equal(t, 10, res.Trials)
}

func TestTuner_DefaultsToBaselineCoefficients(t *testing.T) {
	t.Parallel()

	tuner := &tune.Tuner{
		Scorer:     distanceScorer(sift.DefaultCoefficients()),
		Pairs:      somePairs(t),
		Iterations: 1,
		Seed:       1,
	}

	res, err := tuner.Tune(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sift.DefaultCoefficients(), res.Initial)
	assert.Zero(t, res.InitialScore)
}

func TestTuner_RequiresCorpus(t *testing.T) {
	t.Parallel()

	tuner := &tune.Tuner{Scorer: levenshtein.NewCorpusScorer()}

	_, err := tuner.Tune(context.Background())

	require.Error(t, err)
	assert.Equal(t, sift.EEMPTYCORPUS, sift.ErrorCode(err))
}

func TestTuner_RequiresScorer(t *testing.T) {
	t.Parallel()

	tuner := &tune.Tuner{Pairs: somePairs(t)}

	_, err := tuner.Tune(context.Background())

	require.Error(t, err)
	assert.Equal(t, sift.EINVALID, sift.ErrorCode(err))
}
