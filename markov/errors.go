// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// errors.go - sentinel errors for the markov package.
//
// Error policy mirrors package series: sentinels only, wrapped with the
// method name via markovErrorf, matched with errors.Is.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrBadOrder indicates a chain order below 1.
	ErrBadOrder = errors.New("markov: order must be ≥ 1")

	// ErrShortSeries indicates a series too short to fit or score.
	ErrShortSeries = errors.New("markov: series too short")

	// ErrTooManyStates indicates |alphabet|^order above MaxStates.
	ErrTooManyStates = errors.New("markov: too many states")

	// ErrShortHistory indicates a history with fewer values than the order.
	ErrShortHistory = errors.New("markov: history shorter than order")

	// ErrUnknownSymbol indicates a symbol outside the fitted alphabet.
	ErrUnknownSymbol = errors.New("markov: unknown symbol")

	// ErrBadSteps indicates a negative step count.
	ErrBadSteps = errors.New("markov: steps must be ≥ 0")

	// ErrLengthMismatch indicates actual and predicted series of different lengths.
	ErrLengthMismatch = errors.New("markov: length mismatch")

	// ErrNeedRandSource indicates a random walk called without an RNG.
	ErrNeedRandSource = errors.New("markov: rng is required")

	// ErrNilTransitions indicates a nil *TransitionMatrix argument.
	ErrNilTransitions = errors.New("markov: nil transition matrix")
)

// markovErrorf prefixes an error with the method name and keeps the
// sentinel reachable for errors.Is:
//
//	markovErrorf(MethodPredict, ErrShortHistory, "len=%d order=%d", 1, 2)
//	// "Predict: len=1 order=2: markov: history shorter than order"
func markovErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
