// SPDX-License-Identifier: MIT
// Package: spanner/builder
//
// components.go — connected-component extraction and relabeling.
//
// Contract:
//   - LargestComponent(g) never mutates g.
//   - The largest component's vertices are relabeled to [0, size) in
//     ascending old-id order, so relative vertex order is preserved and
//     the result is deterministic.
//   - Size ties resolve to the component discovered first (lowest start id).
//
// Complexity:
//   - Time: O(V + E) for the sweep, O(size log size) for the relabel sort.
//   - Space: O(V).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spanner/core"
)

// connectedComponents sweeps g with BFS and returns every component as a
// slice of vertex ids, in discovery order.
func connectedComponents(g *core.Graph) [][]int {
	n := g.VertexCount()
	seen := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect the component of start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			nbrs, _ := g.Neighbors(u)
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// LargestComponent extracts the largest connected component of g as a
// fresh graph over the contiguous range [0, size). The second return
// value maps each new id to its old id in g.
//
// This is the reduction step that turns an arbitrary (possibly
// disconnected) sample into the connected, contiguously-labeled input
// the spanner constructions document.
func LargestComponent(g *core.Graph) (*core.Graph, []int, error) {
	const method = "LargestComponent"
	if g == nil {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if g.VertexCount() == 0 {
		empty, err := core.NewGraph(0)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", method, err)
		}

		return empty, []int{}, nil
	}

	comps := connectedComponents(g)
	largest := comps[0]
	for _, comp := range comps[1:] {
		if len(comp) > len(largest) {
			largest = comp
		}
	}

	// Relabel in ascending old-id order.
	origIDs := make([]int, len(largest))
	copy(origIDs, largest)
	sort.Ints(origIDs)

	newID := make(map[int]int, len(origIDs))
	for i, old := range origIDs {
		newID[old] = i
	}

	sub, err := core.NewGraph(len(origIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}
	for i, old := range origIDs {
		nbrs, errN := g.Neighbors(old)
		if errN != nil {
			return nil, nil, fmt.Errorf("%s: Neighbors(%d): %w", method, old, errN)
		}
		for _, w := range nbrs {
			// Each undirected edge is added once, from its lower new id.
			j, ok := newID[w]
			if !ok || j < i {
				continue
			}
			if err = sub.AddEdge(i, j); err != nil {
				return nil, nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", method, i, j, err)
			}
		}
	}

	return sub, origIDs, nil
}
