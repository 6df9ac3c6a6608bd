package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/spanner/core"
)

// TestNewGraph_Errors verifies size validation.
func TestNewGraph_Errors(t *testing.T) {
	if _, err := core.NewGraph(-1); !errors.Is(err, core.ErrVertexCount) {
		t.Errorf("negative n: want ErrVertexCount, got %v", err)
	}
	if g, err := core.NewGraph(0); err != nil || g.VertexCount() != 0 {
		t.Errorf("empty graph: got (%v, %v); want (0 vertices, nil)", g, err)
	}
}

// TestAddEdge_Errors verifies eager rejection of invalid edges.
func TestAddEdge_Errors(t *testing.T) {
	g, _ := core.NewGraph(3)

	if err := g.AddEdge(0, 3); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("out-of-range v: want ErrVertexRange, got %v", err)
	}
	if err := g.AddEdge(-1, 1); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("negative u: want ErrVertexRange, got %v", err)
	}
	if err := g.AddEdge(1, 1); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("first AddEdge: unexpected error %v", err)
	}
	if err := g.AddEdge(0, 1); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("duplicate: want ErrDuplicateEdge, got %v", err)
	}
	// Reversed orientation is the same undirected edge.
	if err := g.AddEdge(1, 0); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("reversed duplicate: want ErrDuplicateEdge, got %v", err)
	}
	// Failed calls must not have mutated anything.
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
}

// TestGraph_Accessors covers degrees, neighbors, and membership checks.
func TestGraph_Accessors(t *testing.T) {
	g, _ := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {2, 3}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	if d, _ := g.Degree(0); d != 2 {
		t.Errorf("Degree(0) = %d; want 2", d)
	}
	if _, err := g.Degree(9); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("Degree(9): want ErrVertexRange, got %v", err)
	}
	if !g.HasEdge(1, 0) || g.HasEdge(1, 3) {
		t.Errorf("HasEdge: got (1,0)=%v (1,3)=%v; want true false", g.HasEdge(1, 0), g.HasEdge(1, 3))
	}
	if _, err := g.Neighbors(4); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("Neighbors(4): want ErrVertexRange, got %v", err)
	}

	nbrs, err := g.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors(0): %v", err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(0) = %v; want %v", nbrs, want)
	}
	// The returned slice must be a copy, not a view.
	nbrs[0] = 99
	again, _ := g.Neighbors(0)
	if again[0] != 1 {
		t.Error("Neighbors must return an independent copy")
	}
}

// TestGraph_Edges verifies canonical (U < V, sorted) edge enumeration.
func TestGraph_Edges(t *testing.T) {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(3, 2)
	_ = g.AddEdge(1, 0)
	_ = g.AddEdge(2, 0)

	want := []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges = %v; want %v", got, want)
	}
}

// TestGraph_Clone verifies deep-copy independence.
func TestGraph_Clone(t *testing.T) {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1)

	c := g.Clone()
	if err := c.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge on clone: %v", err)
	}
	if g.EdgeCount() != 1 || c.EdgeCount() != 2 {
		t.Errorf("edge counts: g=%d c=%d; want 1 and 2", g.EdgeCount(), c.EdgeCount())
	}
	if g.HasEdge(1, 2) {
		t.Error("mutating the clone must not touch the original")
	}
}
