// Package core declares the Graph container, the Edge value type,
// and the sentinel errors raised by graph construction.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was passed to an operation.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrVertexCount indicates NewGraph was called with a negative size.
	ErrVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex id outside the valid range [0, n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates an attempt to add an already existing edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")
)

// Edge is an undirected edge in canonical orientation: U < V always.
// Edge values are produced by Graph.Edges and consumed by samplers and
// persistence code; they carry no weight because the module is strictly
// unweighted.
type Edge struct {
	// U is the lower endpoint id.
	U int

	// V is the higher endpoint id.
	V int
}
