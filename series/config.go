// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • seriesConfig is the single source of truth for all generator knobs.
//   • Defaults are documented; no globals.
//   • newSeriesConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng        = nil   (stochastic generators return ErrNeedRandSource)
//   • initial    = 0.5
//   • trend      = 0.0
//   • noise      = 0.0
//   • burst      = 0.0
//   • burst len  = DefaultBurstMin..DefaultBurstMax
//   • order      = DefaultOrder
//   • inject     = nil   (no periodic pattern injection)

package series

import (
	"math/rand"
)

// seriesConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type seriesConfig struct {
	// RNG for stochastic draws; nil means "no randomness available".
	rng *rand.Rand

	// Process controls.
	initial  float64 // P(s[0] = 1)
	trend    float64 // P(continue from memory) per step
	noise    float64 // P(flip) per step
	burst    float64 // P(start a burst) per step
	burstMin int     // inclusive, ≥1
	burstMax int     // inclusive, ≥ burstMin
	order    int     // memory depth, ≥1
	inject   []int   // periodic pattern stamped every InjectionStride*len(inject)
}

const defaultInitial = 0.5

// newSeriesConfig constructs a config with defaults and applies all options
// in order. Complexity: O(len(opts)).
func newSeriesConfig(opts ...Option) seriesConfig {
	cfg := seriesConfig{
		initial:  defaultInitial,
		burstMin: DefaultBurstMin,
		burstMax: DefaultBurstMax,
		order:    DefaultOrder,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
