package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// csvHeader returns the stable column layout shared by WriteCSV and the
// incremental WithCSV sink.
func csvHeader() []string {
	return []string{
		"run_id", "n", "p", "k", "rep", "seed",
		"n_original", "n_component", "edges_g", "edges_h",
		"bound", "size_ratio",
		"edge_max_stretch", "edge_mean_stretch", "edge_infinite",
		"pair_max_stretch", "pair_mean_stretch", "pair_infinite", "pair_unreachable_g",
		"gen_seconds", "build_seconds", "eval_seconds",
	}
}

// formatFloat renders a metric cell; the non-finite spellings match
// what strconv.ParseFloat accepts back.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsNaN(v):
		return "nan"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// record renders one Result in csvHeader order.
func record(r Result) []string {
	return []string{
		r.RunID,
		strconv.Itoa(r.N),
		formatFloat(r.P),
		strconv.Itoa(r.K),
		strconv.Itoa(r.Rep),
		strconv.FormatInt(r.Seed, 10),
		strconv.Itoa(r.NOriginal),
		strconv.Itoa(r.NComponent),
		strconv.Itoa(r.EdgesG),
		strconv.Itoa(r.EdgesH),
		formatFloat(r.Bound),
		formatFloat(r.SizeRatio),
		formatFloat(r.Edges.Max),
		formatFloat(r.Edges.Mean),
		strconv.Itoa(r.Edges.Infinite),
		formatFloat(r.Pairs.Max),
		formatFloat(r.Pairs.Mean),
		strconv.Itoa(r.Pairs.Infinite),
		strconv.Itoa(r.Pairs.UnreachableG),
		formatFloat(r.GenDuration.Seconds()),
		formatFloat(r.BuildDuration.Seconds()),
		formatFloat(r.EvalDuration.Seconds()),
	}
}

// WriteCSV renders results to w with a header row and one row per run.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader()); err != nil {
		return fmt.Errorf("experiment: csv header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("experiment: csv row %s: %w", r.RunID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("experiment: csv flush: %w", err)
	}

	return nil
}
