// SPDX-License-Identifier: MIT
// Package: spanner/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - config is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// config aggregates the knobs used by factories.
// It is passed by VALUE to factories (immutable to callers).
type config struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
}

// Option configures builder behavior via functional arguments.
type Option func(*config)

// newConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed equips factories with a rand source seeded by seed.
// Identical (parameters, seed) pairs reproduce identical graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit random source; nil leaves the config
// unchanged. The source must not be shared with concurrent callers.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}
