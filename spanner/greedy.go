package spanner

import (
	"fmt"

	"github.com/katalvlaran/spanner/bfs"
	"github.com/katalvlaran/spanner/core"
)

// Greedy constructs a (2k−1)-spanner of g with the deterministic greedy
// algorithm of Althöfer et al.: edges are scanned in canonical order
// (U < V, sorted) and an edge is kept exactly when the distance between
// its endpoints in the spanner built so far exceeds 2k−1.
//
// Greedy serves as the deterministic baseline against the randomized
// Build: no random source, guaranteed O(n^(1+1/k)) size, but a far more
// expensive construction — each probe is a BFS over the partial spanner,
// depth-capped at 2k−1 with target early exit.
//
// Returns ErrGraphNil or ErrBadK (k < 1); nothing fails after validation.
func Greedy(g *core.Graph, k int) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 1 {
		return nil, fmt.Errorf("spanner: k=%d: %w", k, ErrBadK)
	}

	n := g.VertexCount()
	h, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	limit := 2*k - 1
	for _, e := range g.Edges() {
		res, err := bfs.Distances(h, e.U,
			bfs.WithTarget(e.V),
			bfs.WithMaxDepth(limit),
		)
		if err != nil {
			return nil, fmt.Errorf("spanner: greedy probe (%d,%d): %w", e.U, e.V, err)
		}
		// Inf compares greater than any finite limit, so unreachable
		// endpoints take this branch too.
		if res.Dist[e.V] > limit {
			if err = h.AddEdge(e.U, e.V); err != nil {
				return nil, fmt.Errorf("spanner: greedy add (%d,%d): %w", e.U, e.V, err)
			}
		}
	}

	return h, nil
}
