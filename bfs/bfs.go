// Package bfs runs breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/spanner/core"
)

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int // FIFO frontier; head tracks the dequeue position
	head  int
	res   *Result
}

// Distances runs BFS on g starting from source, applying any number of
// functional Options, and returns a fresh Result.
// Returns ErrGraphNil or ErrVertexRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Distances(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source and target vertices
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("bfs: source %d: %w", source, ErrVertexRange)
	}
	if o.Target != NoTarget && (o.Target < 0 || o.Target >= n) {
		return nil, fmt.Errorf("bfs: target %d: %w", o.Target, ErrVertexRange)
	}

	// Prepare walker; Dist doubles as the visited guard (Inf = unseen)
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Dist:   make([]int, n),
			Parent: make([]int, n),
			Order:  make([]int, 0, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Dist[v] = Inf
		w.res.Parent[v] = NoParent
	}

	// Seed the frontier with the source at depth 0
	w.res.Dist[source] = 0
	w.queue = append(w.queue, source)

	return w.res, w.loop()
}

// loop processes the frontier until empty, error, or target settlement.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		v := w.queue[w.head]
		w.head++

		if err := w.visit(v); err != nil {
			return err
		}
		if v == w.opts.Target {
			// target settled; abandon the remaining frontier
			return nil
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Dist[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies MaxDepth, and enqueues
// each unseen neighbor with its settled distance and parent link.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
	}

	nextDepth := w.res.Dist[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// first time seen?
		if w.res.Dist[nbr] == Inf {
			w.res.Dist[nbr] = nextDepth
			w.res.Parent[nbr] = v
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
