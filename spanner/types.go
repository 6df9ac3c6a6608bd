// Package spanner provides options and error definitions for the
// spanner constructions.
package spanner

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultSeed seeds the random source when the caller supplies none.
// A fixed default keeps zero-option calls reproducible.
const DefaultSeed int64 = 1

// Sentinel errors for spanner construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("spanner: graph is nil")

	// ErrBadK is returned when the stretch parameter k is below 1.
	ErrBadK = errors.New("spanner: k must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spanner: invalid option supplied")
)

// Option configures construction behavior via functional arguments.
// If an Option is invalid (e.g. a nil rand source), it is recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds the resolved construction configuration.
type Options struct {
	// rng drives the per-cluster survival sampling. Never nil after
	// DefaultOptions; every Build call owns its own source.
	rng *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options seeded with DefaultSeed.
func DefaultOptions() Options {
	return Options{
		rng: rand.New(rand.NewSource(DefaultSeed)),
		err: nil,
	}
}

// WithSeed replaces the random source by one seeded with seed.
// Identical (G, k, seed) triples produce identical spanners.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit random source. The source is consumed by
// the construction and must not be shared with concurrent callers.
// A nil source is an option violation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrOptionViolation)
			return
		}
		o.rng = rng
	}
}
