// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// transitions.go - order-k states and the transition matrix.
//
// Contract:
//   • The alphabet is sorted ascending; column j of the matrix is alphabet[j].
//   • State i encodes a window w[0..k) as the base-|alphabet| number whose
//     most significant digit is the column of w[0], so states enumerate in
//     lexicographic order of their windows.
//   • Every window of length k followed by a value is one observation;
//     windows overlap.
//   • Rows of observed states sum to 1; rows of unobserved states are zero.

package markov

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/bitseries/matrix"
	"github.com/katalvlaran/bitseries/series"
)

// TransitionMatrix holds the fitted order-k chain: one row per state, one
// column per symbol. It is immutable after construction.
type TransitionMatrix struct {
	order    int
	alphabet []int
	column   map[int]int // symbol → column
	counts   *matrix.Dense
	probs    *matrix.Dense
}

// BuildTransitions fits an order-k chain to s. The alphabet is the set of
// distinct values of s.
//
// Errors: ErrBadOrder, ErrShortSeries when len(s) ≤ order,
// ErrTooManyStates.
// Complexity: O(n + |alphabet|^(order+1)) time and memory.
func BuildTransitions(s series.Series, order int) (*TransitionMatrix, error) {
	return BuildTransitionsOver(s, order, Distinct(s))
}

// BuildTransitionsOver is BuildTransitions with an explicit alphabet, so a
// model fitted on part of a series can still address every symbol of the
// whole. Duplicates in alphabet are ignored; values of s outside it return
// ErrUnknownSymbol.
func BuildTransitionsOver(s series.Series, order int, alphabet []int) (*TransitionMatrix, error) {
	if order < 1 {
		return nil, markovErrorf(MethodBuildTransitions, ErrBadOrder, "order=%d", order)
	}
	if len(s) <= order {
		return nil, markovErrorf(MethodBuildTransitions, ErrShortSeries, "len=%d order=%d", len(s), order)
	}

	tm := &TransitionMatrix{
		order:    order,
		alphabet: Distinct(alphabet),
	}
	tm.column = make(map[int]int, len(tm.alphabet))
	for j, v := range tm.alphabet {
		tm.column[v] = j
	}

	states, ok := statesFor(len(tm.alphabet), order)
	if !ok {
		return nil, markovErrorf(MethodBuildTransitions, ErrTooManyStates,
			"alphabet=%d order=%d limit=%d", len(tm.alphabet), order, MaxStates)
	}

	cols := make([]int, len(s))
	for i, v := range s {
		j, known := tm.column[v]
		if !known {
			return nil, markovErrorf(MethodBuildTransitions, ErrUnknownSymbol, "s[%d]=%d", i, v)
		}
		cols[i] = j
	}

	var err error
	if tm.counts, err = matrix.NewDense(states, len(tm.alphabet)); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildTransitions, err)
	}

	// Rolling encode: drop the oldest digit, append the newest.
	state := 0
	for i := 0; i < order; i++ {
		state = state*len(tm.alphabet) + cols[i]
	}
	for i := order; i < len(cols); i++ {
		if err = tm.counts.AddAt(state, cols[i], 1); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildTransitions, err)
		}
		state = tm.next(state, cols[i])
	}
	tm.probs = tm.counts.NormalizeRows()

	return tm, nil
}

// Distinct returns the sorted distinct values of s.
func Distinct(s []int) []int {
	seen := make(map[int]struct{}, 2)
	out := make([]int, 0, 2)
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// statesFor returns a^k, or ok=false above MaxStates.
func statesFor(a, k int) (int, bool) {
	n := 1
	for i := 0; i < k; i++ {
		n *= a
		if n > MaxStates {
			return 0, false
		}
	}

	return n, true
}

// Order returns the chain order k.
func (tm *TransitionMatrix) Order() int { return tm.order }

// Alphabet returns a copy of the sorted symbol set.
func (tm *TransitionMatrix) Alphabet() []int { return append([]int(nil), tm.alphabet...) }

// States returns the number of states, |alphabet|^order.
func (tm *TransitionMatrix) States() int { return tm.counts.Rows() }

// next returns the state reached from state by emitting column col.
func (tm *TransitionMatrix) next(state, col int) int {
	return (state*len(tm.alphabet) + col) % tm.States()
}

// StateIndex returns the state of window, which must hold exactly Order
// symbols of the alphabet.
func (tm *TransitionMatrix) StateIndex(window []int) (int, error) {
	if len(window) != tm.order {
		return 0, fmt.Errorf("StateIndex: len=%d order=%d: %w", len(window), tm.order, ErrShortHistory)
	}
	state := 0
	for i, v := range window {
		j, ok := tm.column[v]
		if !ok {
			return 0, fmt.Errorf("StateIndex: window[%d]=%d: %w", i, v, ErrUnknownSymbol)
		}
		state = state*len(tm.alphabet) + j
	}

	return state, nil
}

// StateSymbols decodes state into its window of Order symbols.
// It panics if state is out of range.
func (tm *TransitionMatrix) StateSymbols(state int) []int {
	if state < 0 || state >= tm.States() {
		panic(fmt.Sprintf("markov: StateSymbols: state %d out of range [0,%d)", state, tm.States()))
	}
	a := len(tm.alphabet)
	out := make([]int, tm.order)
	for i := tm.order - 1; i >= 0; i-- {
		out[i] = tm.alphabet[state%a]
		state /= a
	}

	return out
}

// StateLabel renders a state as its window: "001" when every symbol is a
// single digit, "10,-1" otherwise.
func (tm *TransitionMatrix) StateLabel(state int) string {
	sep := ""
	for _, v := range tm.alphabet {
		if v < 0 || v > 9 {
			sep = ","
			break
		}
	}
	syms := tm.StateSymbols(state)
	parts := make([]string, len(syms))
	for i, v := range syms {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, sep)
}

// Prob returns P(next = symbol | state); 0 for an unknown symbol or state.
func (tm *TransitionMatrix) Prob(state, symbol int) float64 {
	j, ok := tm.column[symbol]
	if !ok {
		return 0
	}
	p, err := tm.probs.At(state, j)
	if err != nil {
		return 0
	}

	return p
}

// Count returns how often symbol followed state in the fitted series.
func (tm *TransitionMatrix) Count(state, symbol int) int {
	j, ok := tm.column[symbol]
	if !ok {
		return 0
	}
	c, err := tm.counts.At(state, j)
	if err != nil {
		return 0
	}

	return int(c)
}

// Row returns a copy of the probability row of state, indexed like Alphabet.
func (tm *TransitionMatrix) Row(state int) ([]float64, error) {
	return tm.probs.Row(state)
}

// Observed reports whether state occurred (with a successor) in the fitted series.
func (tm *TransitionMatrix) Observed(state int) bool {
	sum, err := tm.counts.RowSum(state)
	return err == nil && sum > 0
}

// String prints the matrix with one header row of symbols and one row per
// state, tab separated:
//
//	      0         1
//	0     0.250000  0.750000
//	1     1.000000  0.000000
func (tm *TransitionMatrix) String() string {
	var b strings.Builder
	for _, v := range tm.alphabet {
		fmt.Fprintf(&b, "\t%d", v)
	}
	b.WriteByte('\n')
	for s := 0; s < tm.States(); s++ {
		b.WriteString(tm.StateLabel(s))
		row, _ := tm.probs.Row(s)
		for _, p := range row {
			fmt.Fprintf(&b, "\t%f", p)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
