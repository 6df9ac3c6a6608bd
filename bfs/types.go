// Package bfs provides tunable options and error definitions
// for the breadth-first distance oracle.
package bfs

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel values in Result slices.
const (
	// Inf marks a vertex unreachable from the source in Result.Dist.
	// Any finite distance compares strictly smaller.
	Inf = math.MaxInt

	// NoParent marks the source itself and unreached vertices in Result.Parent.
	NoParent = -1

	// NoTarget disables target-based early exit.
	NoTarget = -1
)

// Sentinel errors for oracle execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexRange is returned when the source or target id is out of range.
	ErrVertexRange = errors.New("bfs: vertex id out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures oracle behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this distance.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Target, if not NoTarget, stops the traversal once Target has been
	// visited; Dist entries beyond the abandoned frontier stay Inf.
	Target int

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(v, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no target early exit (Target == NoTarget)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		Target:   NoTarget,
		OnVisit:  func(int, int) error { return nil },
		err:      nil,
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the traversal as soon as vertex t has been visited.
// Pass NoTarget to disable. A target outside [0, n) surfaces as
// ErrVertexRange when Distances is invoked.
func WithTarget(t int) Option {
	return func(o *Options) { o.Target = t }
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one traversal:
//   - Dist: distance (in edges) from the source, Inf if unreachable.
//   - Parent: predecessor in the BFS tree, NoParent for source/unreached.
//   - Order: vertices visited, in visit sequence.
type Result struct {
	Dist   []int
	Parent []int
	Order  []int
}

// Reached reports whether v was settled by the traversal.
// Out-of-range ids simply report false.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Inf
}

// PathTo reconstructs the shortest path from the source to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
