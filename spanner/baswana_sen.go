package spanner

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spanner/core"
)

// neighborCluster pairs a cluster id with the lowest-id neighbor of the
// current vertex inside that cluster (its representative).
type neighborCluster struct {
	id  int
	rep int
}

// Build constructs a (2k−1)-spanner H of g with the Baswana–Sen
// randomized clustering algorithm. H spans the same vertex range as g and
// satisfies H ⊆ G at every point of the construction; edges are only ever
// added. See the package documentation for the phase structure, the
// determinism contract, and the edge-case policy.
//
// Returns ErrGraphNil, ErrBadK (k < 1), or ErrOptionViolation; nothing
// fails after validation.
func Build(g *core.Graph, k int, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if k < 1 {
		return nil, fmt.Errorf("spanner: k=%d: %w", k, ErrBadK)
	}

	// Degenerate policy: a 1-spanner must preserve exact distances, so
	// the only valid H is G itself.
	if k == 1 {
		return g.Clone(), nil
	}

	n := g.VertexCount()
	h, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return h, nil
	}

	// Phase 0: identity partition, H = ∅.
	cs := newClusterState(n)

	// Constant sampling probability across phases; this is what yields
	// the expected O(k·n^(1+1/k)) size bound.
	prob := math.Pow(float64(n), -1.0/float64(k))

	// Phases 1..k−1: sample survivors, then resolve every vertex whose
	// cluster did not survive.
	for phase := 1; phase < k; phase++ {
		survived := cs.SampleSurvivors(prob, o.rng)
		// Neighboring clusters are resolved against the assignment at the
		// end of the previous phase, never against in-phase mutations.
		prev := cs.snapshot()

		for v := 0; v < n; v++ {
			if !cs.IsActive(v) {
				continue
			}
			if survived[prev[v].cluster] {
				// Surviving clusters carry their members into the next
				// phase unchanged.
				continue
			}

			adjacent := neighboringClusters(g, v, prev)

			// Lowest surviving neighboring cluster wins (ids ascending).
			var chosen *neighborCluster
			for i := range adjacent {
				if survived[adjacent[i].id] {
					chosen = &adjacent[i]
					break
				}
			}

			if chosen != nil {
				// Adopt: one edge into the surviving cluster, then move v.
				if err = ensureEdge(h, v, chosen.rep); err != nil {
					return nil, err
				}
				cs.Reassign(v, chosen.id)
				continue
			}

			// No surviving neighbor: one representative edge per distinct
			// neighboring cluster, then v retires for good.
			for _, nc := range adjacent {
				if err = ensureEdge(h, v, nc.rep); err != nil {
					return nil, err
				}
			}
			cs.Retire(v)
		}
	}

	// Phase k: connect every vertex to each neighboring cluster of the
	// final clustering it is not already connected to. Intra-cluster
	// paths are already in H (the adoption edges form each cluster's
	// spanning tree), so a vertex skips its own cluster.
	final := cs.snapshot()
	for v := 0; v < n; v++ {
		adjacent := neighboringClusters(g, v, final)
		if len(adjacent) == 0 {
			continue
		}
		covered := reachedClusters(h, v, final)
		own, active := cs.ClusterOf(v)
		for _, nc := range adjacent {
			if active && nc.id == own {
				continue
			}
			if covered[nc.id] {
				continue
			}
			if err = ensureEdge(h, v, nc.rep); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}

// neighboringClusters returns, for every cluster of the prev assignment
// containing at least one neighbor of v, that cluster's id and the
// lowest-id neighbor of v inside it, sorted by cluster id ascending.
// Retired neighbors belong to no cluster and are skipped.
// Complexity: O(deg(v) log deg(v)).
func neighboringClusters(g *core.Graph, v int, prev []membership) []neighborCluster {
	nbrs, _ := g.Neighbors(v)
	lowest := make(map[int]int, len(nbrs))
	for _, w := range nbrs {
		m := prev[w]
		if m.retired {
			continue
		}
		if r, ok := lowest[m.cluster]; !ok || w < r {
			lowest[m.cluster] = w
		}
	}

	out := make([]neighborCluster, 0, len(lowest))
	for c, r := range lowest {
		out = append(out, neighborCluster{id: c, rep: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// reachedClusters maps the clusters (per the given assignment) that v
// already has a spanner edge into.
// Complexity: O(deg_H(v)).
func reachedClusters(h *core.Graph, v int, assign []membership) map[int]bool {
	nbrs, _ := h.Neighbors(v)
	out := make(map[int]bool, len(nbrs))
	for _, w := range nbrs {
		if m := assign[w]; !m.retired {
			out[m.cluster] = true
		}
	}

	return out
}

// ensureEdge inserts the undirected edge (u,v) into h unless it is
// already present. H only ever grows.
func ensureEdge(h *core.Graph, u, v int) error {
	if h.HasEdge(u, v) {
		return nil
	}

	return h.AddEdge(u, v)
}
