// Package series provides validation helpers to enforce parameter contracts
// of the generators.
//
// Each function returns an error built by seriesErrorf when its precondition
// is violated, so the sentinel stays reachable with errors.Is.
package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// validateLength ensures the requested length n is ≥ 0.
// Complexity: O(1).
func validateLength(method string, n int) error {
	if n < 0 {
		return seriesErrorf(method, ErrBadLength, "length must be ≥ 0, got %d", n)
	}

	return nil
}

// validateDistribution checks, in order: matching non-zero lengths, each
// probability in [0,1], and the sum within SumTolerance of 1.
// Complexity: O(k) for k symbols.
func validateDistribution(method string, d Distribution) error {
	if len(d.Values) == 0 || len(d.Values) != len(d.Probs) {
		return seriesErrorf(method, ErrLengthMismatch, "got %d values and %d probabilities", len(d.Values), len(d.Probs))
	}
	for i, p := range d.Probs {
		if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
			return seriesErrorf(method, ErrInvalidProbability, "probs[%d] must be in [%.1f,%.1f], got %g", i, MinProbability, MaxProbability, p)
		}
	}
	if sum := floats.Sum(d.Probs); !scalar.EqualWithinAbs(sum, MaxProbability, SumTolerance) {
		return seriesErrorf(method, ErrProbabilitySum, "sum=%g", sum)
	}

	return nil
}

// validatePattern rejects a non-nil zero-length pattern.
// A nil pattern is valid and means "use the default".
func validatePattern(method string, pattern []int) error {
	if pattern != nil && len(pattern) == 0 {
		return seriesErrorf(method, ErrEmptyPattern, "pattern length must be ≥ 1")
	}

	return nil
}

// validateRand ensures a stochastic generator has an RNG to draw from.
func validateRand(method string, cfg seriesConfig) error {
	if cfg.rng == nil {
		return seriesErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}
