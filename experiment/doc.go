// Package experiment orchestrates parameter sweeps over random graphs:
// generate a G(n,p) sample, extract its largest component, build a
// (2k−1)-spanner, evaluate stretch, and collect everything into one
// record per run.
//
// What
//
//   - RunSingle: one (n, p, k, rep) cell — generate, build, evaluate,
//     and time each stage.
//   - RunSuite: the full cartesian product of a Config, with structured
//     progress logging (zap) and optional incremental CSV output.
//   - WriteCSV: render results with a stable column layout.
//   - Aggregate: group results by (n, p, k) into mean/std/min/max rows.
//   - TheoreticalBound: the expected-size yardstick k·n^(1+1/k).
//
// Determinism
//
//	The per-run seed is BaseSeed + rep; the spanner and the stretch
//	evaluators get fixed offsets of it. Identical Configs reproduce
//	identical graphs, spanners and samples — only RunID (a fresh UUID)
//	and the wall-clock durations differ between invocations.
//
// Honest aggregation
//
//	A run whose spanner disconnects a sampled pair has infinite maximum
//	stretch. Aggregate keeps such runs out of the finite stretch
//	statistics and counts them in AggregateRow.InfiniteRuns instead of
//	averaging +Inf into a mean.
//
// Errors
//
//   - ErrNoParameters  if a Config parameter list is empty.
//   - ErrBadVertexCount, ErrBadProbability, ErrBadK, ErrBadReps,
//     ErrBadSampleCount for the individual range violations.
package experiment
