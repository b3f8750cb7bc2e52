// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// impl_process.go - binary stochastic process with memory, noise and bursts.
//
// Purpose:
//   • Produce a binary series with persistence (trend), random bit flips
//     (noise), short runs of forced values (bursts) and an optional periodic
//     pattern stamped over the result (injection).
//
// Contract:
//   • Process(n, opts...) returns a slice of length n with values in {0,1}.
//   • Strict determinism per (n, rng state, options); no panics; no globals.
//   • O(n·order) time, O(n) memory.
//
// Per-step draw order (fixed; changing it changes every seeded golden):
//   1. trend:  Float64 < trend ? memory(order) : Intn(2)
//   2. noise:  Float64 < noise ? flip
//   3. burst:  Float64 < burst ? length = burstMin + Intn(burstMax-burstMin+1)
//
// A burst writes 1 − s[i-1] over s[i-1 .. i-1+length), clipped to n. Positions
// past i are overwritten before the main loop reaches them; the loop then
// recomputes them, so a burst only survives beyond i through the trend step.

package series

// Process generates a binary series of length n.
//
// Knobs (see options.go): WithInitial, WithTrend, WithNoise, WithBurst,
// WithBurstRange, WithOrder, WithInjection. Requires WithSeed or WithRand.
//
// Errors: ErrBadLength for n < 0, ErrNeedRandSource without an RNG.
func Process(n int, opts ...Option) (Series, error) {
	if err := validateLength(MethodProcess, n); err != nil {
		return nil, err
	}
	cfg := newSeriesConfig(opts...)
	if err := validateRand(MethodProcess, cfg); err != nil {
		return nil, err
	}

	out := make(Series, n)
	if n == 0 {
		return out, nil
	}

	rng := cfg.rng
	if rng.Float64() < cfg.initial {
		out[0] = 1
	}

	var (
		i, j, end int
		burstVal  int
		span      = cfg.burstMax - cfg.burstMin + 1
	)
	for i = 1; i < n; i++ {
		if rng.Float64() < cfg.trend {
			out[i] = memory(out, i, cfg.order)
		} else {
			out[i] = rng.Intn(2)
		}

		if rng.Float64() < cfg.noise {
			out[i] = 1 - out[i]
		}

		if rng.Float64() < cfg.burst {
			end = i - 1 + cfg.burstMin + rng.Intn(span)
			if end > n {
				end = n
			}
			burstVal = 1 - out[i-1]
			for j = i - 1; j < end; j++ {
				out[j] = burstVal
			}
		}
	}

	injectPattern(out, cfg.inject)

	return out, nil
}

// memory returns the majority value of the last min(order, i) samples before
// index i; a tie resolves to s[i-1]. With order 1 this is s[i-1].
func memory(s Series, i, order int) int {
	if order > i {
		order = i
	}
	var ones int
	for _, v := range s[i-order : i] {
		ones += v
	}
	switch {
	case 2*ones > order:
		return 1
	case 2*ones < order:
		return 0
	default:
		return s[i-1]
	}
}

// injectPattern stamps pattern at every index that is a multiple of
// InjectionStride*len(pattern), clipped at len(s). Empty pattern is a no-op.
func injectPattern(s Series, pattern []int) {
	if len(pattern) == 0 {
		return
	}
	stride := InjectionStride * len(pattern)
	for start := 0; start < len(s); start += stride {
		copy(s[start:], pattern)
	}
}
