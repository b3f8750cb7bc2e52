// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// graph.go - the state graph of a TransitionMatrix.
//
// Contract:
//   • Every state is a vertex named by StateLabel, observed or not.
//   • Each transition with positive probability p is one edge
//     state → next state with weight p; a state that can follow itself
//     ("00" then 0) is a self-loop.
//   • Vertex metadata: "symbols" ([]int window) and "state" (int index).

package markov

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bitseries/bfs"
	"github.com/katalvlaran/bitseries/core"
	"github.com/katalvlaran/bitseries/series"
)

// Graph is a state graph built from a TransitionMatrix.
type Graph struct {
	tm     *TransitionMatrix
	g      *core.Graph
	labels []string // state index → vertex ID
	index  map[string]int
}

// NewGraph builds the state graph of tm.
// Complexity: O(States·|alphabet|).
func NewGraph(tm *TransitionMatrix) (*Graph, error) {
	if tm == nil {
		return nil, markovErrorf(MethodNewGraph, ErrNilTransitions, "tm=nil")
	}
	mg := &Graph{
		tm:     tm,
		g:      core.NewGraph(core.WithWeighted(), core.WithLoops()),
		labels: make([]string, tm.States()),
		index:  make(map[string]int, tm.States()),
	}

	var (
		v   *core.Vertex
		err error
	)
	for s := range mg.labels {
		mg.labels[s] = tm.StateLabel(s)
		mg.index[mg.labels[s]] = s
		if err = mg.g.AddVertex(mg.labels[s]); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodNewGraph, err)
		}
		v, _ = mg.g.Vertex(mg.labels[s])
		v.Metadata["symbols"] = tm.StateSymbols(s)
		v.Metadata["state"] = s
	}

	var row []float64
	for s := range mg.labels {
		row, _ = tm.probs.Row(s)
		for col, p := range row {
			if p <= 0 {
				continue
			}
			if _, err = mg.g.AddEdge(mg.labels[s], mg.labels[tm.next(s, col)], p); err != nil {
				return nil, fmt.Errorf("%s: %s→%s: %w", MethodNewGraph, mg.labels[s], mg.labels[tm.next(s, col)], err)
			}
		}
	}

	return mg, nil
}

// Core exposes the underlying graph for read-only queries.
func (mg *Graph) Core() *core.Graph { return mg.g }

// Transitions returns the matrix the graph was built from.
func (mg *Graph) Transitions() *TransitionMatrix { return mg.tm }

// Label returns the vertex ID of state.
func (mg *Graph) Label(state int) string { return mg.labels[state] }

// RandomWalk forecasts steps values by walking the graph from the state at
// the tail of history. Each step picks an outgoing edge with probability
// equal to its weight (one rng.Float64 per step), emits the last symbol of
// the edge's target and records the weight as the step's confidence. A
// state without outgoing edges emits the smallest symbol with confidence 0.
//
// Errors: ErrNeedRandSource, ErrBadSteps, ErrShortHistory, ErrUnknownSymbol.
func (mg *Graph) RandomWalk(history series.Series, steps int, rng *rand.Rand) (Forecast, error) {
	if rng == nil {
		return Forecast{}, markovErrorf(MethodRandomWalk, ErrNeedRandSource, "rng=nil")
	}
	if steps < 0 {
		return Forecast{}, markovErrorf(MethodRandomWalk, ErrBadSteps, "steps=%d", steps)
	}
	state, err := mg.tm.tailState(MethodRandomWalk, history)
	if err != nil {
		return Forecast{}, err
	}

	fc := Forecast{
		Values:     make(series.Series, steps),
		Confidence: make([]float64, steps),
	}
	var (
		edges   []core.Edge
		weights []float64
		pick    int
	)
	for i := 0; i < steps; i++ {
		edges, err = mg.g.Neighbors(mg.labels[state])
		if err != nil {
			return Forecast{}, fmt.Errorf("%s: %w", MethodRandomWalk, err)
		}
		if len(edges) == 0 {
			fc.Values[i] = mg.tm.alphabet[0]
			state = mg.tm.next(state, 0)
			continue
		}
		weights = weights[:0]
		for _, e := range edges {
			weights = append(weights, e.Weight)
		}
		pick = draw(weights, rng.Float64())
		state = mg.index[edges[pick].To]
		syms := mg.tm.StateSymbols(state)
		fc.Values[i] = syms[len(syms)-1]
		fc.Confidence[i] = edges[pick].Weight
	}

	return fc, nil
}

// Disconnected returns the states with neither incoming nor outgoing
// transitions (states never seen in the fitted series), sorted by label.
func (mg *Graph) Disconnected() []string {
	var out []string
	for _, id := range mg.g.Vertices() {
		in, outDeg, err := mg.g.Degree(id)
		if err == nil && in == 0 && outDeg == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Unreachable returns the states a walk starting at the state of from's
// tail can never visit, sorted by label.
func (mg *Graph) Unreachable(from series.Series) ([]string, error) {
	state, err := mg.tm.tailState("Unreachable", from)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(mg.g, mg.labels[state])
	if err != nil {
		return nil, fmt.Errorf("Unreachable: %w", err)
	}

	var out []string
	for _, id := range mg.g.Vertices() {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out, nil
}

// Path returns a shortest sequence of states leading from the state of
// from's tail to the state labelled to, both included.
func (mg *Graph) Path(from series.Series, to string) ([]string, error) {
	state, err := mg.tm.tailState("Path", from)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(mg.g, mg.labels[state])
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	return res.PathTo(to)
}
