// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// options.go - functional options for the series package.
//
// Contract (strict):
//   • Options are functional (type Option func(*seriesConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package series

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating a seriesConfig before use.
type Option func(*seriesConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Sharing one *rand.Rand across calls continues a single stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(c *seriesConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *seriesConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithInitial sets P(s[0] = 1) for Process. Panics if p ∉ [0,1].
func WithInitial(p float64) Option {
	mustProbability("WithInitial", p)
	return func(c *seriesConfig) {
		c.initial = p
	}
}

// WithTrend sets the per-step probability that Process continues from memory
// instead of drawing a fresh value. Panics if p ∉ [0,1].
func WithTrend(p float64) Option {
	mustProbability("WithTrend", p)
	return func(c *seriesConfig) {
		c.trend = p
	}
}

// WithNoise sets the per-step bit-flip probability for Process.
// Panics if p ∉ [0,1].
func WithNoise(p float64) Option {
	mustProbability("WithNoise", p)
	return func(c *seriesConfig) {
		c.noise = p
	}
}

// WithBurst sets the per-step probability that Process starts a burst.
// Panics if p ∉ [0,1].
func WithBurst(p float64) Option {
	mustProbability("WithBurst", p)
	return func(c *seriesConfig) {
		c.burst = p
	}
}

// WithBurstRange sets the inclusive burst length bounds.
// Panics unless 1 ≤ min ≤ max.
func WithBurstRange(min, max int) Option {
	if min < 1 || max < min {
		panic(fmt.Sprintf("series: WithBurstRange: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(c *seriesConfig) {
		c.burstMin, c.burstMax = min, max
	}
}

// WithOrder sets the memory depth consulted by the Process trend step.
// Panics if k < 1.
func WithOrder(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("series: WithOrder: order must be ≥ 1, got %d", k))
	}
	return func(c *seriesConfig) {
		c.order = k
	}
}

// WithInjection sets the periodic pattern Process stamps over its output.
// A nil or empty pattern disables injection. The slice is copied.
func WithInjection(pattern []int) Option {
	var p []int
	if len(pattern) > 0 {
		p = append([]int(nil), pattern...)
	}
	return func(c *seriesConfig) {
		c.inject = p
	}
}

// mustProbability panics when p is outside [MinProbability, MaxProbability].
func mustProbability(name string, p float64) {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic(fmt.Sprintf("series: %s: probability must be in [0,1], got %g", name, p))
	}
}
