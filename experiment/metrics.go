package experiment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TheoreticalBound returns the expected spanner size k·n^(1+1/k) —
// the yardstick the statistical size bound is measured against.
// Zero when n or k is non-positive.
func TheoreticalBound(n, k int) float64 {
	if n <= 0 || k <= 0 {
		return 0
	}

	return float64(k) * math.Pow(float64(n), 1+1/float64(k))
}

// Stats holds mean/std/min/max over one metric of a result group.
// Std is 0 for groups of fewer than two values.
type Stats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// newStats aggregates values; the zero Stats stands for an empty group.
func newStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{
		Mean: stat.Mean(values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}

	return s
}

// AggregateRow summarizes all repetitions of one (n, p, k) cell.
type AggregateRow struct {
	// N, P, K identify the cell; Runs counts its results.
	N    int
	P    float64
	K    int
	Runs int

	// EdgesH and SizeRatio aggregate the spanner size metrics.
	EdgesH    Stats
	SizeRatio Stats

	// EdgeStretchMax and PairStretchMax aggregate the per-run maximum
	// stretch, over runs with purely finite samples of that kind.
	EdgeStretchMax Stats
	PairStretchMax Stats

	// InfiniteRuns counts runs with at least one infinite-stretch sample;
	// such runs stay out of the stretch Stats above.
	InfiniteRuns int
}

// Aggregate groups results by (n, p, k) and reduces each group to one
// AggregateRow. Rows come back sorted by N, then P, then K.
func Aggregate(results []Result) []AggregateRow {
	type key struct {
		n int
		p float64
		k int
	}
	groups := make(map[key][]Result)
	for _, r := range results {
		kk := key{r.N, r.P, r.K}
		groups[kk] = append(groups[kk], r)
	}

	keys := make([]key, 0, len(groups))
	for kk := range groups {
		keys = append(keys, kk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].n != keys[j].n {
			return keys[i].n < keys[j].n
		}
		if keys[i].p != keys[j].p {
			return keys[i].p < keys[j].p
		}

		return keys[i].k < keys[j].k
	})

	rows := make([]AggregateRow, 0, len(keys))
	for _, kk := range keys {
		group := groups[kk]
		row := AggregateRow{N: kk.n, P: kk.p, K: kk.k, Runs: len(group)}

		var edgesH, ratio, edgeMax, pairMax []float64
		for _, r := range group {
			edgesH = append(edgesH, float64(r.EdgesH))
			ratio = append(ratio, r.SizeRatio)
			if r.Edges.Infinite > 0 || r.Pairs.Infinite > 0 {
				row.InfiniteRuns++
			}
			if r.Edges.Infinite == 0 && r.Edges.Finite > 0 {
				edgeMax = append(edgeMax, r.Edges.Max)
			}
			if r.Pairs.Infinite == 0 && r.Pairs.Finite > 0 {
				pairMax = append(pairMax, r.Pairs.Max)
			}
		}
		row.EdgesH = newStats(edgesH)
		row.SizeRatio = newStats(ratio)
		row.EdgeStretchMax = newStats(edgeMax)
		row.PairStretchMax = newStats(pairMax)
		rows = append(rows, row)
	}

	return rows
}
