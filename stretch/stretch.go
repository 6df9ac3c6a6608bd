package stretch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/spanner/bfs"
	"github.com/katalvlaran/spanner/core"
)

// validate applies the shared precondition checks of both evaluators.
func validate(g, h *core.Graph, sampleCount int) error {
	if g == nil || h == nil {
		return ErrGraphNil
	}
	if g.VertexCount() != h.VertexCount() {
		return fmt.Errorf("stretch: |V(G)|=%d |V(H)|=%d: %w",
			g.VertexCount(), h.VertexCount(), ErrVertexMismatch)
	}
	if sampleCount < 0 {
		return fmt.Errorf("stretch: sampleCount=%d: %w", sampleCount, ErrSampleCount)
	}

	return nil
}

// classify builds one Sample from a normalized pair and its distances.
func classify(u, v, dG, dH int) Sample {
	s := Sample{U: u, V: v, DistG: dG, DistH: dH}
	switch {
	case dG == bfs.Inf:
		s.Category = UnreachableG
		s.Ratio = math.NaN()
	case dH == bfs.Inf:
		s.Category = InfiniteStretch
		s.Ratio = math.Inf(1)
	default:
		s.Category = Finite
		s.Ratio = float64(dH) / float64(dG)
	}

	return s
}

// EvaluateEdges draws sampleCount edges of g uniformly at random and
// reports the stretch of each in h. For an edge (u,v), d_G is 1 by
// definition; d_H comes from a fresh oracle run over h.
//
// While sampleCount ≤ |E(G)| the draw is without replacement; a larger
// request falls back to drawing with replacement, so the result always
// holds exactly sampleCount records.
//
// Returns ErrGraphNil, ErrVertexMismatch, ErrSampleCount, ErrNoEdges
// (when sampleCount > 0 on an edgeless graph), or ErrOptionViolation.
func EvaluateEdges(g, h *core.Graph, sampleCount int, opts ...Option) ([]Sample, error) {
	if err := validate(g, h, sampleCount); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if sampleCount == 0 {
		return []Sample{}, nil
	}

	edges := g.Edges()
	if len(edges) == 0 {
		return nil, fmt.Errorf("stretch: EvaluateEdges: %w", ErrNoEdges)
	}

	// Pick edge indices: a prefix of a permutation while the sample fits,
	// independent uniform draws otherwise.
	var picks []int
	if sampleCount <= len(edges) {
		picks = o.rng.Perm(len(edges))[:sampleCount]
	} else {
		picks = make([]int, sampleCount)
		for i := range picks {
			picks[i] = o.rng.Intn(len(edges))
		}
	}

	samples := make([]Sample, 0, sampleCount)
	for _, idx := range picks {
		e := edges[idx]
		res, err := bfs.Distances(h, e.U, bfs.WithTarget(e.V))
		if err != nil {
			return nil, fmt.Errorf("stretch: oracle over H: %w", err)
		}
		samples = append(samples, classify(e.U, e.V, 1, res.Dist[e.V]))
	}

	return samples, nil
}

// EvaluatePairs draws sampleCount unordered vertex pairs uniformly with
// replacement (u ≠ v enforced by redraw) and reports d_G against d_H for
// each. Pairs unreachable in G surface as the UnreachableG category.
//
// A graph with fewer than two vertices has no pairs; the result is empty.
//
// Returns ErrGraphNil, ErrVertexMismatch, ErrSampleCount, or
// ErrOptionViolation.
func EvaluatePairs(g, h *core.Graph, sampleCount int, opts ...Option) ([]Sample, error) {
	if err := validate(g, h, sampleCount); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if sampleCount == 0 || n < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, sampleCount)
	for i := 0; i < sampleCount; i++ {
		u := o.rng.Intn(n)
		v := o.rng.Intn(n)
		for v == u {
			v = o.rng.Intn(n)
		}
		if u > v {
			u, v = v, u
		}

		resG, err := bfs.Distances(g, u, bfs.WithTarget(v))
		if err != nil {
			return nil, fmt.Errorf("stretch: oracle over G: %w", err)
		}
		if resG.Dist[v] == bfs.Inf {
			// Unreachable already in G: H cannot be blamed; record the
			// category without consulting H.
			samples = append(samples, classify(u, v, bfs.Inf, bfs.Inf))
			continue
		}

		resH, err := bfs.Distances(h, u, bfs.WithTarget(v))
		if err != nil {
			return nil, fmt.Errorf("stretch: oracle over H: %w", err)
		}
		samples = append(samples, classify(u, v, resG.Dist[v], resH.Dist[v]))
	}

	return samples, nil
}

// Summarize aggregates samples into a Summary. Finite statistics (Max
// contribution, Mean, Std) cover only the Finite category; infinite and
// unreachable-in-G records are counted, and a single InfiniteStretch
// record forces Max to +Inf.
func Summarize(samples []Sample) Summary {
	sum := Summary{Samples: len(samples)}

	finite := make([]float64, 0, len(samples))
	for _, s := range samples {
		switch s.Category {
		case Finite:
			sum.Finite++
			finite = append(finite, s.Ratio)
			if s.Ratio > sum.Max {
				sum.Max = s.Ratio
			}
		case InfiniteStretch:
			sum.Infinite++
		case UnreachableG:
			sum.UnreachableG++
		}
	}
	if sum.Infinite > 0 {
		sum.Max = math.Inf(1)
	}
	if len(finite) > 0 {
		sum.Mean = stat.Mean(finite, nil)
		if len(finite) > 1 {
			sum.Std = stat.StdDev(finite, nil)
		}
	}

	return sum
}
