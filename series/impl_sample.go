// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// impl_sample.go - i.i.d. categorical sampler.
//
// Contract:
//   • Sample(n, d, opts...) returns exactly n values drawn independently from d.
//   • Invalid distributions return (nil, err); nothing is printed.
//   • One rng.Float64() per element, so a seed fully fixes the output.
//   • O(n·k) time for k symbols, O(n + k) memory.

package series

// Sample draws n values independently from the categorical distribution d.
//
// Validation (first failure wins):
//   - n < 0                          ⇒ ErrBadLength
//   - len(Values) != len(Probs) or 0 ⇒ ErrLengthMismatch
//   - some p ∉ [0,1]                 ⇒ ErrInvalidProbability
//   - |1 − Σp| > SumTolerance        ⇒ ErrProbabilitySum
//   - no RNG configured              ⇒ ErrNeedRandSource
func Sample(n int, d Distribution, opts ...Option) (Series, error) {
	if err := validateLength(MethodSample, n); err != nil {
		return nil, err
	}
	if err := validateDistribution(MethodSample, d); err != nil {
		return nil, err
	}
	cfg := newSeriesConfig(opts...)
	if err := validateRand(MethodSample, cfg); err != nil {
		return nil, err
	}

	// Cumulative probabilities; the sum may sit up to SumTolerance away from 1.
	cdf := make([]float64, len(d.Probs))
	var acc float64
	for i, p := range d.Probs {
		acc += p
		cdf[i] = acc
	}
	// Rounding slack goes to the last symbol that can actually occur.
	fallback := lastNonZero(d.Probs)

	out := make(Series, n)
	var (
		u float64
		j int
	)
	for i := 0; i < n; i++ {
		u = cfg.rng.Float64() * acc
		out[i] = d.Values[fallback]
		for j = 0; j < len(cdf); j++ {
			if u < cdf[j] && d.Probs[j] > 0 {
				out[i] = d.Values[j]
				break
			}
		}
	}

	return out, nil
}

// lastNonZero returns the index of the last strictly positive probability.
// The caller guarantees the sum is ≈1, so one exists.
func lastNonZero(probs []float64) int {
	for i := len(probs) - 1; i >= 0; i-- {
		if probs[i] > 0 {
			return i
		}
	}

	return len(probs) - 1
}
