// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// evaluate.go - fit on train+valid, forecast and score on test.

package markov

import (
	"fmt"

	"github.com/katalvlaran/bitseries/series"
)

// Report is the outcome of Evaluate.
type Report struct {
	// History is train followed by valid: the series the chain was fitted on.
	History     series.Series
	Transitions *TransitionMatrix
	Forecast    Forecast
	Accuracy    float64
	Confusion   Confusion
}

// Evaluate fits an order-k chain on train+valid, forecasts len(test) steps
// from its tail and scores the forecast against test. The alphabet covers
// all three parts, so test symbols unseen in training still get a row.
// opts are passed to Predict.
//
// Errors: ErrShortSeries for an empty test part, plus those of
// BuildTransitionsOver and Predict.
func Evaluate(train, valid, test series.Series, order int, opts ...Option) (Report, error) {
	if len(test) == 0 {
		return Report{}, markovErrorf(MethodEvaluate, ErrShortSeries, "empty test part")
	}
	history := make(series.Series, 0, len(train)+len(valid))
	history = append(append(history, train...), valid...)

	all := make([]int, 0, len(history)+len(test))
	all = append(append(all, history...), test...)

	tm, err := BuildTransitionsOver(history, order, Distinct(all))
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", MethodEvaluate, err)
	}
	fc, err := Predict(tm, history, len(test), opts...)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", MethodEvaluate, err)
	}

	rep := Report{History: history, Transitions: tm, Forecast: fc}
	if rep.Accuracy, err = Accuracy(test, fc.Values); err != nil {
		return Report{}, fmt.Errorf("%s: %w", MethodEvaluate, err)
	}
	if rep.Confusion, err = NewConfusion(test, fc.Values); err != nil {
		return Report{}, fmt.Errorf("%s: %w", MethodEvaluate, err)
	}

	return rep, nil
}
