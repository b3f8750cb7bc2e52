// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// Edges are followed in their stored direction; weights are ignored unless
// a FilterEdge option inspects them.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bitseries/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// a context error, or any error returned by OnVisit.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(item.id, e.To, e.Weight) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; !seen {
			w.enqueue(e.To, next, item.id)
		}
	}

	return nil
}
