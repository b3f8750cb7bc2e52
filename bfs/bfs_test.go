package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/bitseries/bfs"
	"github.com/katalvlaran/bitseries/core"
)

// chain builds the weighted digraph 00→01→10→00 plus 11→00 and 10→10.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"00", "01", 1}, {"01", "10", 1}, {"10", "00", 0.5}, {"10", "10", 0.5}, {"11", "00", 1},
	} {
		if _, err := g.AddEdge(e.from, e.to, e.w); err != nil {
			t.Fatalf("AddEdge(%s→%s): %v", e.from, e.to, err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DirectedReach follows edge direction, so 11 is never reached from 00.
func TestBFS_DirectedReach(t *testing.T) {
	res, err := bfs.BFS(chain(t), "00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"00", "01", "10"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached("11") {
		t.Errorf("11 has no incoming edge and must not be reached")
	}
	if d := res.Depth["10"]; d != 2 {
		t.Errorf("Depth[10] = %d; want 2", d)
	}
	path, err := res.PathTo("10")
	if err != nil || !reflect.DeepEqual(path, []string{"00", "01", "10"}) {
		t.Errorf("PathTo(10) = %v, %v", path, err)
	}
	if _, err := res.PathTo("11"); err == nil {
		t.Errorf("PathTo(11) should fail")
	}
}

// TestBFS_Options covers MaxDepth, FilterEdge, OnVisit and cancellation.
func TestBFS_Options(t *testing.T) {
	g := chain(t)

	res, err := bfs.BFS(g, "00", bfs.WithMaxDepth(1))
	if err != nil || !reflect.DeepEqual(res.Order, []string{"00", "01"}) {
		t.Errorf("MaxDepth(1): Order = %v, err = %v", res.Order, err)
	}

	heavy := func(_, _ string, w float64) bool { return w > 0.5 }
	res, err = bfs.BFS(g, "11", bfs.WithFilterEdge(heavy))
	if err != nil || !reflect.DeepEqual(res.Order, []string{"11", "00", "01", "10"}) {
		t.Errorf("FilterEdge: Order = %v, err = %v", res.Order, err)
	}
	res, err = bfs.BFS(g, "10", bfs.WithFilterEdge(heavy))
	if err != nil || !reflect.DeepEqual(res.Order, []string{"10"}) {
		t.Errorf("FilterEdge from 10: Order = %v, err = %v", res.Order, err)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "00", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "01" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, "00", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
