// Package core: Graph method implementations.
//
// Determinism:
//   - Vertices() is sorted by ID.
//   - Edges() is sorted by (From, To); Neighbors(id) by To.
//   - Edge IDs are "e" + a monotonic counter.

package core

import (
	"math"
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the vertex with the given ID. Its Metadata map is live.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge creates the edge from→to with the given weight and returns its ID.
// Missing endpoints are added first.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed; the graph is unchanged on error.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.incoming[to]++

	return eid, nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the edge from→to, or ok=false when there is none.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, false
	}

	return *g.edges[eid], true
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns copies of the outgoing edges of id sorted by To.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(out))
	for _, eid := range out {
		edges = append(edges, *g.edges[eid])
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// NeighborIDs returns the IDs reachable from id in one step, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// Degree returns the number of incoming and outgoing edges of id.
// A self-loop counts once in each direction.
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return g.incoming[id], len(adj), nil
}
