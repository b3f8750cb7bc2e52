// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// score.go - accuracy and confusion counts of a forecast.

package markov

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bitseries/series"
)

// Accuracy returns the fraction of positions where predicted equals actual.
// Two empty series score 0.
// Errors: ErrLengthMismatch.
func Accuracy(actual, predicted series.Series) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, markovErrorf(MethodAccuracy, ErrLengthMismatch, "actual=%d predicted=%d", len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, nil
	}
	hits := 0
	for i, v := range actual {
		if predicted[i] == v {
			hits++
		}
	}

	return float64(hits) / float64(len(actual)), nil
}

// Confusion counts (actual, predicted) pairs. Labels is the sorted union of
// both series; Counts[i][j] is how often Labels[i] was predicted as Labels[j].
type Confusion struct {
	Labels []int
	Counts [][]int
}

// NewConfusion tabulates predicted against actual.
// Errors: ErrLengthMismatch.
func NewConfusion(actual, predicted series.Series) (Confusion, error) {
	if len(actual) != len(predicted) {
		return Confusion{}, markovErrorf(MethodConfusion, ErrLengthMismatch, "actual=%d predicted=%d", len(actual), len(predicted))
	}
	labels := Distinct(append(append([]int(nil), actual...), predicted...))
	idx := make(map[int]int, len(labels))
	for i, v := range labels {
		idx[v] = i
	}
	c := Confusion{Labels: labels, Counts: make([][]int, len(labels))}
	for i := range c.Counts {
		c.Counts[i] = make([]int, len(labels))
	}
	for i, v := range actual {
		c.Counts[idx[v]][idx[predicted[i]]]++
	}

	return c, nil
}

// Count returns how often actual was predicted as predicted.
func (c Confusion) Count(actual, predicted int) int {
	i, j := c.index(actual), c.index(predicted)
	if i < 0 || j < 0 {
		return 0
	}

	return c.Counts[i][j]
}

func (c Confusion) index(label int) int {
	for i, v := range c.Labels {
		if v == label {
			return i
		}
	}
	return -1
}

// Total returns the number of scored positions.
func (c Confusion) Total() int {
	n := 0
	for _, row := range c.Counts {
		for _, v := range row {
			n += v
		}
	}
	return n
}

// Correct returns the diagonal sum.
func (c Confusion) Correct() int {
	n := 0
	for i := range c.Counts {
		n += c.Counts[i][i]
	}
	return n
}

// String renders rows as actual labels and columns as predicted labels:
//
//	a\p	0	1
//	0	5	2
//	1	1	7
func (c Confusion) String() string {
	var b strings.Builder
	b.WriteString(`a\p`)
	for _, v := range c.Labels {
		fmt.Fprintf(&b, "\t%d", v)
	}
	b.WriteByte('\n')
	for i, row := range c.Counts {
		fmt.Fprintf(&b, "%d", c.Labels[i])
		for _, v := range row {
			fmt.Fprintf(&b, "\t%d", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
