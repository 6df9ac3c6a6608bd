// SPDX-License-Identifier: MIT
// Package: spanner/builder
//
// impl_fixed.go — deterministic fixed topologies: Cycle, Path, Complete, Star.
//
// Contract (all factories):
//   - n below the factory minimum → ErrTooFewVertices.
//   - Edges are emitted in a stable, documented order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Cycle/Path/Star: O(n) edges.
//   - Complete: O(n²) edges.
//
// Determinism:
//   - No randomness; identical n ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanner/core"
)

// File-local constants (stable method tags and size minima).
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodComplete = "Complete"
	methodStar     = "Star"

	minCycleVertices    = 3
	minPathVertices     = 2
	minCompleteVertices = 1
	minStarVertices     = 2
)

// Cycle builds the n-vertex simple cycle C_n.
// Edge order: (i, (i+1) mod n) for i = 0..n−1.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Path builds the n-vertex simple path P_n.
// Edge order: (i, i+1) for i = 0..n−2.
func Path(n int) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
		}
	}

	return g, nil
}

// Complete builds the complete simple graph K_n.
// Edge order: for each i asc, (i, j) with j > i asc.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, nil
}

// Star builds a star: center vertex 0 connected to the n−1 leaves 1..n−1.
// Edge order: (0, i) for i = 1..n−1.
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, i, err)
		}
	}

	return g, nil
}
