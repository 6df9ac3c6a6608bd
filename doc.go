// Package spanner is an in-memory toolkit for building and evaluating
// graph spanners — sparse subgraphs that preserve distances up to a
// bounded multiplicative stretch.
//
// 🚀 What is spanner?
//
//	A deterministic-given-seed, dependency-light library that brings together:
//		• Core primitives: simple undirected graphs over contiguous int vertices
//		• Distance oracle: single-source unweighted BFS with hooks & early exit
//		• Baswana–Sen: the randomized (2k−1)-spanner construction
//		• Greedy baseline: the deterministic Althöfer et al. construction
//		• Stretch evaluation: sampled edge/pair stretch with explicit
//		  infinite-ratio accounting
//		• Builders: seeded Erdős–Rényi generation, fixed topologies,
//		  largest-component extraction
//		• Experiments: parameter sweeps, CSV persistence, aggregation
//
// ✨ Why choose spanner?
//
//   - Reproducible – every random choice flows from an explicit, caller-seeded source
//   - Rock-solid guarantees – H ⊆ G always, (2k−1) worst-case stretch on edges
//   - Honest statistics – unreachable pairs are a first-class outcome,
//     never averaged into finite stretch
//   - Pure algorithms – no cgo, no service surface, no hidden globals
//
// Everything is organized under flat subpackages:
//
//	core/       — Graph and Edge types over vertex range [0, n)
//	bfs/        — unweighted shortest-path distances (the oracle)
//	spanner/    — Baswana–Sen construction + greedy baseline
//	stretch/    — sampled stretch evaluation and summaries
//	builder/    — graph generators and component extraction
//	experiment/ — sweep orchestration, CSV, aggregation
//
// Quick ASCII example:
//
//	    0───1
//	   ╱     ╲
//	  5       2        a 6-cycle; with k=2 the construction returns a
//	   ╲     ╱         subgraph whose pairwise stretch never exceeds 3.
//	    4───3
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/spanner
package spanner
