// Package bfs is the module's distance oracle: single-source unweighted
// shortest-path distances over a core.Graph via breadth-first search.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     source vertex.
//   - Returns a Result containing:
//   - Dist: per-vertex distance from the source; Inf marks unreachable
//   - Parent: per-vertex predecessor in the BFS tree (NoParent for the
//     source and unreached vertices)
//   - Order: visit sequence
//   - Supports an OnVisit hook, a MaxDepth cap, and a Target vertex for
//     early exit once the target's distance is settled.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - The stretch evaluator runs one oracle over G and one over H, per
//     sample; the greedy spanner baseline uses Target + MaxDepth to bound
//     its distance probes.
//
// Determinism
//
//	Neighbor lists are iterated in insertion order, so the visit sequence
//	and all distances are fully reproducible for a fixed graph. Distances
//	themselves are independent of insertion order.
//
// Purity
//
//	Distances never mutates the graph and allocates a fresh Result per
//	call, so concurrent calls over a shared read-only graph are safe.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (frontier queue, Dist, Parent, Order)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrVertexRange     if the source (or a Target option) is out of range.
//   - ErrOptionViolation if an invalid Option is supplied (negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
