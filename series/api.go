// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// api.go - the single parameterized entry-point of the series package.
//
// Design contract (strict):
//   - One dispatcher: Generate(spec, opts...). The Kind picks the generator,
//     the Spec carries its data, Options carry RNG and Process knobs.
//   - All generators are implemented in impl_*.go (one file per generator).
//   - Determinism: same spec, options and seed ⇒ identical series.
//   - Safety: never panic; return wrapped sentinel errors.

package series

import "fmt"

// Generate builds a series of spec.Length values with the generator chosen
// by spec.Kind:
//
//   - KindWeighted ⇒ Sample(spec.Length, spec.Distribution, opts...)
//   - KindPattern  ⇒ Repeat(spec.Length, spec.Pattern)
//   - KindProcess  ⇒ Process(spec.Length, opts...)
//
// Any generator error is wrapped as "Generate: %w" so callers can still
// branch with errors.Is against the sentinels (ErrProbabilitySum, ...).
// An unrecognized Kind yields ErrUnknownKind.
func Generate(spec Spec, opts ...Option) (Series, error) {
	var (
		s   Series
		err error
	)
	switch spec.Kind {
	case KindWeighted:
		s, err = Sample(spec.Length, spec.Distribution, opts...)
	case KindPattern:
		s, err = Repeat(spec.Length, spec.Pattern)
	case KindProcess:
		s, err = Process(spec.Length, opts...)
	default:
		return nil, seriesErrorf(MethodGenerate, ErrUnknownKind, "kind=%s", spec.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return s, nil
}
