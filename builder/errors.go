// SPDX-License-Identifier: MIT
// Package: spanner/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using `%w`.
//   - Factories MUST NOT panic at runtime.

package builder

import "errors"

// ErrGraphNil indicates a nil *core.Graph was passed to an operation
// that consumes an existing graph (LargestComponent).
// Usage: if errors.Is(err, ErrGraphNil) { /* supply a graph */ }.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrTooFewVertices indicates that a size parameter (n) is smaller than
// the allowed minimum for the requested factory.
// Typical origins: Cycle (n<3), Path/Star (n<2), Complete/RandomSparse (n<1).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside
// the closed interval [0,1]. This covers RandomSparse(p).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic factory requires a
// non-nil *rand.Rand in the resolved config (WithSeed/WithRand must be
// set). Typical origin: RandomSparse with 0 < p < 1.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
