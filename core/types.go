// Package core defines the directed, weighted Graph that holds Markov
// states as vertices and transition probabilities as edges, with
// thread-safe primitives for building and querying it.
//
// All APIs share one sync.RWMutex, so a graph can be read from several
// goroutines while a single writer adds vertices and edges.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - NaN/±Inf weight, or non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-finite weight, or a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is a one-way connection From→To with a float64 Weight.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	From string
	To   string

	// Weight is the transition probability (or any non-negative cost).
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed graph without parallel edges.
//
// adjacency[from][to] holds the ID of the single edge from→to;
// incoming[to] counts edges ending at to.
type Graph struct {
	mu sync.RWMutex

	weighted   bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	adjacency  map[string]map[string]string
	incoming   map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unweighted and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
		incoming:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether the graph accepts self-loops.
func (g *Graph) Looped() bool { return g.allowLoops }
