// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// predict.go - multi-step forecasting from a TransitionMatrix.
//
// Contract:
//   • The starting state is the last Order values of the history.
//   • Each step emits one symbol, records its probability as the step's
//     confidence, and shifts the emitted symbol into the state.
//   • Without an RNG the most likely symbol is emitted (ties resolve to the
//     smaller symbol), so Predict is deterministic. With WithRand/WithSeed
//     the symbol is drawn from the state's row, one Float64 per step.
//   • An unobserved state emits the smallest symbol with confidence 0.

package markov

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bitseries/series"
)

// Forecast is a predicted continuation and the per-step confidences.
type Forecast struct {
	Values     series.Series
	Confidence []float64
}

// Propagated returns the product of the step confidences: the probability
// the chain assigns to the whole forecast path. It is 1 for an empty forecast.
func (f Forecast) Propagated() float64 {
	return floats.Prod(f.Confidence)
}

// Option customizes Predict and Evaluate.
type Option func(*predictConfig)

type predictConfig struct {
	rng *rand.Rand // nil: emit the most likely symbol
}

// WithRand makes Predict sample each step from rng. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("markov: WithRand(nil)")
	}
	return func(c *predictConfig) {
		c.rng = r
	}
}

// WithSeed makes Predict sample each step from a new rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *predictConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newPredictConfig(opts ...Option) predictConfig {
	var cfg predictConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Predict forecasts steps values following history.
//
// Errors: ErrNilTransitions, ErrBadSteps, ErrShortHistory when
// len(history) < Order, ErrUnknownSymbol for a tail symbol outside the alphabet.
// Complexity: O(steps·|alphabet|).
func Predict(tm *TransitionMatrix, history series.Series, steps int, opts ...Option) (Forecast, error) {
	if tm == nil {
		return Forecast{}, markovErrorf(MethodPredict, ErrNilTransitions, "tm=nil")
	}
	if steps < 0 {
		return Forecast{}, markovErrorf(MethodPredict, ErrBadSteps, "steps=%d", steps)
	}
	state, err := tm.tailState(MethodPredict, history)
	if err != nil {
		return Forecast{}, err
	}
	cfg := newPredictConfig(opts...)

	fc := Forecast{
		Values:     make(series.Series, steps),
		Confidence: make([]float64, steps),
	}
	var (
		row []float64
		col int
	)
	for i := 0; i < steps; i++ {
		row, _ = tm.probs.Row(state)
		if cfg.rng != nil {
			col = draw(row, cfg.rng.Float64())
		} else {
			col = floats.MaxIdx(row)
		}
		fc.Values[i] = tm.alphabet[col]
		fc.Confidence[i] = row[col]
		state = tm.next(state, col)
	}

	return fc, nil
}

// tailState returns the state of the last Order values of history.
func (tm *TransitionMatrix) tailState(method string, history series.Series) (int, error) {
	if len(history) < tm.order {
		return 0, markovErrorf(method, ErrShortHistory, "len=%d order=%d", len(history), tm.order)
	}
	state, err := tm.StateIndex(history[len(history)-tm.order:])
	if err != nil {
		return 0, markovErrorf(method, ErrUnknownSymbol, "tail=%v", history[len(history)-tm.order:])
	}

	return state, nil
}

// draw returns the column whose cumulative probability interval holds
// u·sum(row). An all-zero row returns 0.
func draw(row []float64, u float64) int {
	total := floats.Sum(row)
	if total <= 0 {
		return 0
	}
	u *= total
	last := 0
	var acc float64
	for j, p := range row {
		if p <= 0 {
			continue
		}
		acc += p
		last = j
		if u < acc {
			return j
		}
	}

	return last
}
