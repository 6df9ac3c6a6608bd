package experiment

import (
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanner/builder"
	"github.com/katalvlaran/spanner/spanner"
	"github.com/katalvlaran/spanner/stretch"
)

// Seed offsets decorrelate the three random stages of one run while
// keeping them all derivable from the single per-run seed.
const (
	spannerSeedOffset int64 = 1000
	stretchSeedOffset int64 = 2000
)

// RunSingle executes one run: sample G(n,p) with seed baseSeed+rep,
// extract the largest component, build its k-spanner, and evaluate
// stretchSamples edge and pair samples. Parameters are validated the
// same way Config.Validate does; rep must be non-negative.
func RunSingle(n int, p float64, k, rep int, baseSeed int64, stretchSamples int) (Result, error) {
	if rep < 0 {
		return Result{}, fmt.Errorf("experiment: rep=%d: %w", rep, ErrBadReps)
	}
	// A suite reaching repetition index rep needs rep+1 repetitions.
	cfg := Config{
		NValues:        []int{n},
		PValues:        []float64{p},
		KValues:        []int{k},
		Reps:           rep + 1,
		BaseSeed:       baseSeed,
		StretchSamples: stretchSamples,
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	return runOne(n, p, k, rep, baseSeed, stretchSamples)
}

// runOne is the validated core of RunSingle and RunSuite.
func runOne(n int, p float64, k, rep int, baseSeed int64, samples int) (Result, error) {
	seed := baseSeed + int64(rep)

	genStart := time.Now()
	raw, err := builder.RandomSparse(n, p, builder.WithSeed(seed))
	if err != nil {
		return Result{}, fmt.Errorf("experiment: generate: %w", err)
	}
	comp, _, err := builder.LargestComponent(raw)
	if err != nil {
		return Result{}, fmt.Errorf("experiment: component: %w", err)
	}
	genDur := time.Since(genStart)

	buildStart := time.Now()
	h, err := spanner.Build(comp, k, spanner.WithSeed(seed+spannerSeedOffset))
	if err != nil {
		return Result{}, fmt.Errorf("experiment: build: %w", err)
	}
	buildDur := time.Since(buildStart)

	res := Result{
		RunID:         uuid.NewString(),
		N:             n,
		P:             p,
		K:             k,
		Rep:           rep,
		Seed:          seed,
		NOriginal:     raw.VertexCount(),
		NComponent:    comp.VertexCount(),
		EdgesG:        comp.EdgeCount(),
		EdgesH:        h.EdgeCount(),
		Bound:         TheoreticalBound(comp.VertexCount(), k),
		GenDuration:   genDur,
		BuildDuration: buildDur,
	}
	if res.Bound > 0 {
		res.SizeRatio = float64(res.EdgesH) / res.Bound
	}

	// A sparse sample can collapse to a single-vertex component; there is
	// nothing to evaluate then.
	evalStart := time.Now()
	if samples > 0 && comp.EdgeCount() > 0 {
		edgeSamples, err := stretch.EvaluateEdges(comp, h, samples,
			stretch.WithSeed(seed+stretchSeedOffset))
		if err != nil {
			return Result{}, fmt.Errorf("experiment: evaluate edges: %w", err)
		}
		pairSamples, err := stretch.EvaluatePairs(comp, h, samples,
			stretch.WithSeed(seed+stretchSeedOffset))
		if err != nil {
			return Result{}, fmt.Errorf("experiment: evaluate pairs: %w", err)
		}
		res.Edges = stretch.Summarize(edgeSamples)
		res.Pairs = stretch.Summarize(pairSamples)
	}
	res.EvalDuration = time.Since(evalStart)

	return res, nil
}

// RunSuite executes cfg's full (n, p, k, rep) product in a fixed order:
// n outermost, then p, then k, then repetition. Each completed run is
// logged through the configured logger and, when WithCSV is set,
// appended to the CSV sink immediately.
//
// On a mid-suite failure the completed results are returned alongside
// the error.
func RunSuite(cfg Config, opts ...Option) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var cw *csv.Writer
	if o.csv != nil {
		cw = csv.NewWriter(o.csv)
		if err := cw.Write(csvHeader()); err != nil {
			return nil, fmt.Errorf("experiment: csv header: %w", err)
		}
	}

	results := make([]Result, 0, cfg.Runs())
	for _, n := range cfg.NValues {
		for _, p := range cfg.PValues {
			for _, k := range cfg.KValues {
				for rep := 0; rep < cfg.Reps; rep++ {
					r, err := runOne(n, p, k, rep, cfg.BaseSeed, cfg.StretchSamples)
					if err != nil {
						return results, err
					}
					results = append(results, r)

					o.logger.Info("run complete",
						zap.String("run_id", r.RunID),
						zap.Int("n", n),
						zap.Float64("p", p),
						zap.Int("k", k),
						zap.Int("rep", rep),
						zap.Int("edges_g", r.EdgesG),
						zap.Int("edges_h", r.EdgesH),
						zap.Float64("size_ratio", r.SizeRatio),
						zap.Duration("build", r.BuildDuration),
					)

					if cw != nil {
						if err := cw.Write(record(r)); err != nil {
							return results, fmt.Errorf("experiment: csv row: %w", err)
						}
						cw.Flush()
						if err := cw.Error(); err != nil {
							return results, fmt.Errorf("experiment: csv flush: %w", err)
						}
					}
				}
			}
		}
	}

	return results, nil
}
