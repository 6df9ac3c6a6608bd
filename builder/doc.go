// SPDX-License-Identifier: MIT
// Package: spanner/builder
//
// Package builder produces core.Graph instances for experiments and
// tests: seeded random graphs, deterministic fixed topologies, and
// connected-component extraction.
//
// Design contract (strict):
//   - Every factory returns a fresh *core.Graph; input graphs are never
//     mutated.
//   - Functional options (Option) resolve into an immutable config
//     (no global state).
//   - Determinism: same parameters and seed ⇒ identical graphs. Vertex
//     and edge-trial orders are stable and documented per factory.
//   - Safety: never panic; return sentinel errors from factories.
//
// Factories:
//
//	RandomSparse(n, p, opts...) — Erdős–Rényi G(n,p); seeded rng required
//	                              for 0 < p < 1.
//	Cycle(n)                    — simple cycle C_n (n ≥ 3).
//	Path(n)                     — simple path P_n (n ≥ 2).
//	Complete(n)                 — complete graph K_n (n ≥ 1).
//	Star(n)                     — star with center 0 and n−1 leaves (n ≥ 2).
//
// Component extraction:
//
//	LargestComponent(g) relabels the largest connected component of g to
//	the contiguous range [0, size), preserving relative vertex order, and
//	returns the old-id mapping. Its output satisfies the input contract
//	of the spanner constructions for connected graphs.
//
// Errors:
//
//	ErrGraphNil           - nil graph passed to LargestComponent.
//	ErrTooFewVertices     - a size parameter below the factory's minimum.
//	ErrInvalidProbability - probability outside [0,1].
//	ErrNeedRandSource     - stochastic factory invoked without a seeded rng.
package builder
