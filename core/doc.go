// Package core defines the Graph and Edge types shared by every algorithm
// in this module.
//
// What
//
//   - Graph: an undirected simple graph over the contiguous vertex range
//     [0, n). Vertices exist implicitly from construction; only edges are
//     added. Adjacency is stored as one neighbor slice per vertex.
//   - Edge: an undirected edge in canonical orientation (U < V).
//
// Invariants (enforced at the mutating call, never by a later scan)
//
//   - No self-loops: AddEdge(v, v) fails with ErrSelfLoop.
//   - No duplicate edges: a second AddEdge(u, v) fails with ErrDuplicateEdge.
//   - No out-of-range endpoints: AddEdge outside [0, n) fails with
//     ErrVertexRange.
//
// A Graph reachable through this API is therefore always simple; callers
// never need a separate validation pass.
//
// Ownership
//
//	Graphs are mutable while being built and read-only by convention
//	afterwards. All read accessors either return copies (Neighbors, Edges)
//	or scalars, so a fully built Graph is safe for concurrent readers.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddEdge: O(deg(u)) for the duplicate guard
//   - Neighbors/Degree/HasEdge: O(deg(v))
//   - Edges: O(E log E) (canonical sort)
//   - Clone: O(V + E)
package core
