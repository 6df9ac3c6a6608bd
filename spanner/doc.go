// Package spanner constructs sparse spanners of undirected simple graphs:
// the randomized Baswana–Sen construction and a deterministic greedy
// baseline.
//
// What
//
//   - Build(g, k, opts...) runs the Baswana–Sen clustering construction
//     and returns a subgraph H ⊆ G with worst-case stretch 2k−1 and
//     expected size O(k·n^(1+1/k)).
//   - Greedy(g, k) runs the Althöfer et al. baseline: scan edges in
//     canonical order and keep an edge only when the current spanner
//     distance between its endpoints exceeds 2k−1.
//
// Algorithm (Build, phases 0..k)
//
//	Phase 0 seeds the identity partition: every vertex is its own cluster
//	center. Each of the phases 1..k−1 samples every existing cluster
//	independently with probability p = n^(−1/k). A vertex whose cluster
//	was not sampled either joins the lowest-id sampled neighboring
//	cluster through one new spanner edge, or — when no neighboring
//	cluster was sampled — adds one representative edge per distinct
//	neighboring cluster and retires from all further clustering.
//	Phase k finally gives every vertex one representative edge into each
//	neighboring cluster of the last clustering it is not already
//	connected to.
//
//	Neighboring clusters are always resolved against the assignment as it
//	stood at the end of the previous phase, so reassignment order within a
//	phase cannot change the outcome.
//
// Determinism
//
//	The only randomness is the per-cluster survival sampling, drawn from
//	the caller-seeded source in ascending cluster-id order. Remaining
//	choices are fixed: the sampled neighboring cluster with the lowest
//	cluster id wins, and the lowest-id neighbor inside the chosen cluster
//	is the representative. Identical (G, k, seed) therefore always yield
//	an identical H. The tie-break rule is an implementation choice for
//	reproducibility, not a correctness requirement.
//
// Edge-case policy
//
//   - k = 1 returns a clone of G (a 1-spanner must preserve distances
//     exactly).
//   - n = 0 and n = 1 return an edgeless graph.
//   - Isolated vertices end up with no incident spanner edges.
//   - Disconnected inputs are accepted; clustering never crosses a
//     component boundary, so H preserves G's reachability relation.
//
// Complexity
//
//   - Build: O(k·(V + E)) time, O(V) clustering state.
//   - Greedy: O(E·(V + E)) worst case; each probe is a distance-limited
//     BFS with target early exit.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrBadK            if k < 1.
//   - ErrOptionViolation if an invalid Option is supplied (nil rand source).
//
// Nothing fails after input validation; a failed call produces no spanner.
package spanner
