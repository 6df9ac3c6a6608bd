// Package experiment defines the sweep configuration, per-run result
// record, options and error definitions for the harness.
package experiment

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanner/stretch"
)

// Sentinel errors for sweep configuration.
var (
	// ErrNoParameters is returned when a Config parameter list is empty.
	ErrNoParameters = errors.New("experiment: parameter list is empty")

	// ErrBadVertexCount is returned for a vertex count below 2.
	ErrBadVertexCount = errors.New("experiment: n must be at least 2")

	// ErrBadProbability is returned for an edge probability outside [0,1].
	ErrBadProbability = errors.New("experiment: p must lie in [0,1]")

	// ErrBadK is returned when k < 2 or k exceeds ln(n) for some configured n.
	ErrBadK = errors.New("experiment: k must satisfy 2 ≤ k ≤ ln(n)")

	// ErrBadReps is returned for a repetition count below 1.
	ErrBadReps = errors.New("experiment: reps must be at least 1")

	// ErrBadSampleCount is returned for a negative stretch sample count.
	ErrBadSampleCount = errors.New("experiment: stretch sample count must be non-negative")
)

// Config describes one sweep: the cartesian product of NValues × PValues
// × KValues, repeated Reps times per cell.
type Config struct {
	// NValues are the vertex counts to sweep; each must be ≥ 2.
	NValues []int

	// PValues are the G(n,p) edge probabilities; each must lie in [0,1].
	PValues []float64

	// KValues are the spanner parameters; each k must be ≥ 2 and at most
	// ln(n) for every configured n (the size bound is vacuous beyond that).
	KValues []int

	// Reps is the number of repetitions per (n,p,k) cell; must be ≥ 1.
	Reps int

	// BaseSeed anchors determinism: repetition rep runs with seed
	// BaseSeed + rep, so cells share graph samples across k values.
	BaseSeed int64

	// StretchSamples is the per-run sample count for both edge and pair
	// stretch evaluation; 0 skips evaluation entirely.
	StretchSamples int
}

// Validate checks every Config field against its documented range.
func (c Config) Validate() error {
	if len(c.NValues) == 0 || len(c.PValues) == 0 || len(c.KValues) == 0 {
		return ErrNoParameters
	}
	for _, n := range c.NValues {
		if n < 2 {
			return fmt.Errorf("experiment: n=%d: %w", n, ErrBadVertexCount)
		}
	}
	for _, p := range c.PValues {
		if p < 0 || p > 1 {
			return fmt.Errorf("experiment: p=%v: %w", p, ErrBadProbability)
		}
	}
	for _, k := range c.KValues {
		if k < 2 {
			return fmt.Errorf("experiment: k=%d: %w", k, ErrBadK)
		}
		for _, n := range c.NValues {
			if float64(k) > math.Log(float64(n)) {
				return fmt.Errorf("experiment: k=%d exceeds ln(%d): %w", k, n, ErrBadK)
			}
		}
	}
	if c.Reps < 1 {
		return fmt.Errorf("experiment: reps=%d: %w", c.Reps, ErrBadReps)
	}
	if c.StretchSamples < 0 {
		return fmt.Errorf("experiment: samples=%d: %w", c.StretchSamples, ErrBadSampleCount)
	}

	return nil
}

// Runs reports the total number of runs the sweep will execute.
func (c Config) Runs() int {
	return len(c.NValues) * len(c.PValues) * len(c.KValues) * c.Reps
}

// Result is one completed run: parameters, sizes, stretch summaries and
// per-stage wall-clock durations.
type Result struct {
	// RunID is a fresh UUID identifying this run in logs and CSV output.
	RunID string

	// N, P, K, Rep echo the sweep cell; Seed is the resolved per-run seed.
	N    int
	P    float64
	K    int
	Rep  int
	Seed int64

	// NOriginal is the G(n,p) sample's vertex count (= N); NComponent is
	// the size of its largest component, the graph actually spanned.
	NOriginal  int
	NComponent int

	// EdgesG and EdgesH are the edge counts of the component and its spanner.
	EdgesG int
	EdgesH int

	// Bound is k·n^(1+1/k) for the component size; SizeRatio is EdgesH/Bound.
	Bound     float64
	SizeRatio float64

	// Edges and Pairs summarize the stretch samples; zero when
	// StretchSamples is 0 or the component has no edges.
	Edges stretch.Summary
	Pairs stretch.Summary

	// GenDuration, BuildDuration and EvalDuration time the three stages.
	GenDuration   time.Duration
	BuildDuration time.Duration
	EvalDuration  time.Duration
}

// Option configures suite execution via functional arguments.
type Option func(*Options)

// Options holds the resolved suite configuration.
type Options struct {
	logger *zap.Logger
	csv    io.Writer
}

// DefaultOptions returns Options with a no-op logger and no CSV sink.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop()}
}

// WithLogger routes per-run progress through logger; nil leaves the
// no-op default in place.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCSV appends a header plus one CSV row per completed run to w,
// flushed after every run so partial sweeps still leave usable output.
func WithCSV(w io.Writer) Option {
	return func(o *Options) { o.csv = w }
}
