package core

import (
	"fmt"
	"sort"
)

// Graph is an undirected simple graph over the contiguous vertex range [0, n).
//
// The vertex set is fixed at construction; AddEdge is the only mutation.
// Neighbor slices hold no duplicates, and edge (u,v) implies u ∈ adj[v]
// and v ∈ adj[u]. Once a caller stops adding edges the Graph is safe to
// share across goroutines for reading.
type Graph struct {
	adj [][]int // adj[v] lists the neighbors of v in insertion order
	m   int     // number of undirected edges
}

// NewGraph creates a Graph with n vertices (ids 0..n-1) and no edges.
// Returns ErrVertexCount when n is negative.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrVertexCount)
	}

	return &Graph{adj: make([][]int, n)}, nil
}

// VertexCount reports the number of vertices n.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount reports the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.m }

// HasVertex reports whether v lies in the valid range [0, n).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// Degree returns the number of neighbors of v,
// or ErrVertexRange when v is out of range.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexRange)
	}

	return len(g.adj[v]), nil
}

// HasEdge reports whether the undirected edge (u,v) exists.
// Out-of-range endpoints simply report false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// AddEdge inserts the undirected edge (u,v).
// It fails eagerly, before any mutation, with:
//
//	ErrVertexRange   - u or v outside [0, n)
//	ErrSelfLoop      - u == v
//	ErrDuplicateEdge - the edge already exists
//
// Complexity: O(deg(u)) for the duplicate guard, O(1) amortized insert.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexRange)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.m++

	return nil
}

// Neighbors returns a copy of v's neighbor list in insertion order,
// or ErrVertexRange when v is out of range. The copy keeps callers from
// aliasing internal storage.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexRange)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Edges returns every undirected edge exactly once in canonical form
// (U < V), sorted lexicographically. The slice is freshly allocated.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.m)
	for u := range g.adj {
		for _, v := range g.adj[u] {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}

// Clone returns a deep copy of g: same vertex range, same edges,
// independent storage.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make([][]int, len(g.adj)), m: g.m}
	for v, nbrs := range g.adj {
		if len(nbrs) == 0 {
			continue
		}
		c.adj[v] = make([]int, len(nbrs))
		copy(c.adj[v], nbrs)
	}

	return c
}
