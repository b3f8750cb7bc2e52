// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// errors.go - sentinel errors for the series package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via seriesErrorf.
//   • Generators never panic; validation panics are confined to option
//     constructors (WithX...).

package series

import (
	"errors"
	"fmt"
)

// ErrBadLength indicates a negative requested series length.
var ErrBadLength = errors.New("series: invalid length")

// ErrLengthMismatch indicates that a Distribution has no symbols or that its
// Values and Probs slices differ in length.
var ErrLengthMismatch = errors.New("series: values and probabilities differ in length")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("series: probability out of range")

// ErrProbabilitySum indicates that the probabilities of a Distribution do not
// add up to 1 within SumTolerance.
// Usage: if errors.Is(err, ErrProbabilitySum) { /* fix the distribution */ }.
var ErrProbabilitySum = errors.New("series: probabilities do not sum to unity")

// ErrEmptyPattern indicates a zero-length (non-nil) tiling pattern.
var ErrEmptyPattern = errors.New("series: empty pattern")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithRand or WithSeed.
var ErrNeedRandSource = errors.New("series: rng is required")

// ErrUnknownKind indicates a Spec whose Kind is not one of the enumerated kinds.
var ErrUnknownKind = errors.New("series: unknown generator kind")

// seriesErrorf prefixes an error with the generator method name and keeps
// the sentinel reachable for errors.Is:
//
//	seriesErrorf(MethodRepeat, ErrEmptyPattern, "len=%d", 0)
//	// "Repeat: len=0: series: empty pattern"
func seriesErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
