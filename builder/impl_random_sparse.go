// SPDX-License-Identifier: MIT
// Package: spanner/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials / edge inserts.
//   - Space: O(n + E) for the resulting graph.
//
// Determinism:
//   - Stable trial order: for each i asc, j > i asc.
//   - Deterministic outcomes for a fixed seed due to the fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanner/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi G(n, p) graph with independent
// edge probability p. The sample is typically disconnected for small p;
// feed it through LargestComponent to obtain a connected instance.
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	// Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	// RNG is only required when 0 < p < 1 (true stochastic sampling).
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	// p == 0: the empty graph, no trials needed.
	if p == probMin {
		return g, nil
	}

	// Bernoulli trial per unordered pair in stable order; p == 1 skips
	// the draw and yields K_n.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, i, j, err)
			}
		}
	}

	return g, nil
}
