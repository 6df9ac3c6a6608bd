// Package stretch evaluates how well a spanner H preserves the distances
// of its source graph G, by sampling edges and vertex pairs and comparing
// shortest-path distances through two independent distance oracles.
//
// What
//
//   - EvaluateEdges: draw edges of G uniformly at random (without
//     replacement while the sample fits, with replacement otherwise) and
//     report d_G = 1 against d_H.
//   - EvaluatePairs: draw unordered vertex pairs uniformly with
//     replacement (u ≠ v enforced by redraw) and report both distances.
//   - Summarize: aggregate a sample list into max/mean/stddev over the
//     finite ratios plus explicit counts of the non-finite categories.
//
// Honest statistics
//
//	A pair that H fails to connect is an infinite-stretch outcome — a
//	first-class result, flagged via Sample.Category and counted in
//	Summary.Infinite, never averaged into the finite mean. Likewise a
//	pair already unreachable in G (legal only on disconnected inputs)
//	lands in the UnreachableG category rather than producing a bogus
//	finite ratio.
//
// Determinism
//
//	Sampling order is fixed and every draw comes from the caller-seeded
//	source, so identical (G, H, count, seed) reproduce identical samples.
//
// Errors
//
//   - ErrGraphNil       if either graph pointer is nil.
//   - ErrVertexMismatch if G and H span different vertex ranges.
//   - ErrSampleCount    if sampleCount is negative.
//   - ErrNoEdges        if edge sampling is requested on an edgeless graph.
package stretch
