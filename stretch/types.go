// Package stretch provides sample records, summaries, options and error
// definitions for stretch evaluation.
package stretch

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for stretch evaluation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("stretch: graph is nil")

	// ErrVertexMismatch is returned when G and H span different vertex ranges.
	ErrVertexMismatch = errors.New("stretch: graphs span different vertex ranges")

	// ErrSampleCount is returned when a negative sample count is requested.
	ErrSampleCount = errors.New("stretch: sample count must be non-negative")

	// ErrNoEdges is returned when edge sampling is requested on a graph
	// without edges.
	ErrNoEdges = errors.New("stretch: graph has no edges to sample")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stretch: invalid option supplied")
)

// DefaultSeed seeds the random source when the caller supplies none.
const DefaultSeed int64 = 1

// Category classifies one sample's reachability outcome.
type Category int

const (
	// Finite: both distances finite; Ratio is an ordinary number ≥ 1.
	Finite Category = iota

	// InfiniteStretch: reachable in G but not in H; Ratio is +Inf.
	// On a correct spanner of a connected graph this never occurs.
	InfiniteStretch

	// UnreachableG: the endpoints lie in different components of G.
	// Only possible for pair sampling on disconnected inputs; Ratio is NaN
	// and the sample is excluded from stretch statistics (but counted).
	UnreachableG
)

// String renders the category for logs and CSV cells.
func (c Category) String() string {
	switch c {
	case Finite:
		return "finite"
	case InfiniteStretch:
		return "infinite"
	case UnreachableG:
		return "unreachable_g"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Sample is one read-only evaluation record: an edge or vertex pair, the
// distance on each side, and the resulting stretch ratio.
type Sample struct {
	// U, V are the endpoints, normalized U < V.
	U, V int

	// DistG is the distance in the source graph (always 1 for edge
	// samples). bfs.Inf when the pair is unreachable in G.
	DistG int

	// DistH is the distance in the spanner; bfs.Inf when unreachable.
	DistH int

	// Ratio is DistH / DistG: finite for Finite samples, +Inf for
	// InfiniteStretch, NaN for UnreachableG.
	Ratio float64

	// Category tags the reachability outcome; see the Category constants.
	Category Category
}

// Summary aggregates a sample list. Finite statistics cover only the
// Finite category; the other categories are surfaced as counts so they
// stay distinguishable failure classes.
type Summary struct {
	// Samples is the total number of records aggregated.
	Samples int

	// Finite, Infinite, UnreachableG count the records per category.
	Finite       int
	Infinite     int
	UnreachableG int

	// Max is the maximum ratio: the largest finite ratio, or +Inf as soon
	// as any InfiniteStretch sample exists. Zero when no Finite or
	// InfiniteStretch sample exists.
	Max float64

	// Mean and Std are computed over the finite ratios only.
	Mean float64
	Std  float64
}

// Option configures evaluation behavior via functional arguments.
type Option func(*Options)

// Options holds the resolved evaluation configuration.
type Options struct {
	rng *rand.Rand
	err error
}

// DefaultOptions returns Options seeded with DefaultSeed.
func DefaultOptions() Options {
	return Options{rng: rand.New(rand.NewSource(DefaultSeed))}
}

// WithSeed replaces the random source by one seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit random source. A nil source is an
// option violation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrOptionViolation)
			return
		}
		o.rng = rng
	}
}
