// Package series provides reproducible generators for synthetic binary time
// series, built on the same "functional options" pattern for every generator.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:        a function that mutates seriesConfig before use.
//     – seriesConfig:  holds the RNG and the stochastic-process knobs.
//   - Generators:
//     – Sample:        i.i.d. draws from a categorical Distribution.
//     – Repeat:        a fixed pattern tiled and truncated to length n.
//     – Process:       a trend/noise/burst process with optional pattern injection.
//     – Generate:      dispatch on an enumerated Kind described by a Spec.
//   - Statistics:
//     – Describe:      ones ratio and run-length summary of a Series.
//   - Validation helpers:
//     – validateLength, validateDistribution, validatePattern.
//
// Guarantees:
//
//   - No global random state: every draw comes from the *rand.Rand supplied via
//     WithRand or WithSeed. Same seed and options ⇒ identical series.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Generators never panic; they return sentinel errors (ErrProbabilitySum,
//     ErrEmptyPattern, ...) wrapped with the generator name.
//
// Quick example:
//
//	s, err := series.Sample(1500, series.Binary(0.43, 0.57), series.WithSeed(7))
//	if err != nil {
//		// errors.Is(err, series.ErrProbabilitySum) ...
//	}
package series
