// Package anneal provides a generic simulated-annealing search. Callers
// supply an initial state, a neighbor function, and a cost function; the
// schedule and acceptance rule live here. The search tracks and returns its
// best-seen state, never its last-visited one.
package anneal

import (
	"math"
	"math/rand/v2"

	"github.com/fwojciec/sift"
)

// Default schedule parameters, used when the corresponding Config field is
// zero.
const (
	DefaultStartTemperature = 10.0
	DefaultMinTemperature   = 0.1
	DefaultCooling          = 0.9
	DefaultStepsPerTemp     = 10
)

// Config configures one search over states of type S.
type Config[S any] struct {
	// Initial is the starting state.
	Initial S

	// Neighbor produces a random local perturbation of a state. It must
	// not mutate its argument.
	Neighbor func(state S, rng *rand.Rand) S

	// Cost evaluates a state. Lower is better. An error aborts the search.
	Cost func(state S) (float64, error)

	// StartTemperature and MinTemperature bound the schedule; Cooling is
	// the multiplicative decay applied after StepsPerTemp trials at each
	// temperature.
	StartTemperature float64
	MinTemperature   float64
	Cooling          float64
	StepsPerTemp     int

	// MaxTrials caps the total number of cost evaluations after the
	// initial one. Zero means the schedule alone decides.
	MaxTrials int

	// Seed seeds the random source, making the search reproducible.
	Seed int64
}

// Result holds the outcome of a search.
type Result[S any] struct {
	// Best is the best-seen state.
	Best S

	// BestCost is the cost of Best.
	BestCost float64

	// InitialCost is the cost of the initial state.
	InitialCost float64

	// Trials is the number of neighbor evaluations performed.
	Trials int
}

// Anneal runs the schedule and returns the best-seen state. The initial
// state is evaluated first, so the result never costs more than the
// starting point.
func Anneal[S any](cfg Config[S]) (Result[S], error) {
	if cfg.Neighbor == nil {
		return Result[S]{}, sift.Errorf(sift.EINVALID, "anneal: neighbor function required")
	}
	if cfg.Cost == nil {
		return Result[S]{}, sift.Errorf(sift.EINVALID, "anneal: cost function required")
	}

	start := cfg.StartTemperature
	if start <= 0 {
		start = DefaultStartTemperature
	}
	minTemp := cfg.MinTemperature
	if minTemp <= 0 {
		minTemp = DefaultMinTemperature
	}
	cooling := cfg.Cooling
	if cooling <= 0 || cooling >= 1 {
		cooling = DefaultCooling
	}
	steps := cfg.StepsPerTemp
	if steps <= 0 {
		steps = DefaultStepsPerTemp
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)+1))

	current := cfg.Initial
	currentCost, err := cfg.Cost(current)
	if err != nil {
		return Result[S]{}, err
	}

	res := Result[S]{Best: current, BestCost: currentCost, InitialCost: currentCost}

	for temp := start; temp >= minTemp; temp *= cooling {
		for i := 0; i < steps; i++ {
			if cfg.MaxTrials > 0 && res.Trials >= cfg.MaxTrials {
				return res, nil
			}

			candidate := cfg.Neighbor(current, rng)
			candidateCost, err := cfg.Cost(candidate)
			if err != nil {
				return Result[S]{}, err
			}
			res.Trials++

			if accept(currentCost, candidateCost, temp, rng) {
				current, currentCost = candidate, candidateCost
			}
			if candidateCost < res.BestCost {
				res.Best, res.BestCost = candidate, candidateCost
			}
		}
	}

	return res, nil
}

// accept implements the Metropolis criterion: always take improvements,
// take regressions with probability exp(-delta/temp).
func accept(currentCost, candidateCost, temp float64, rng *rand.Rand) bool {
	if candidateCost <= currentCost {
		return true
	}
	return rng.Float64() < math.Exp((currentCost-candidateCost)/temp)
}
