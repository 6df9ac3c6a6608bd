package experiment_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanner/experiment"
	"github.com/katalvlaran/spanner/stretch"
)

// validConfig is a small sweep every happy-path test starts from.
func validConfig() experiment.Config {
	return experiment.Config{
		NValues:        []int{40, 60},
		PValues:        []float64{0.2},
		KValues:        []int{2, 3},
		Reps:           2,
		BaseSeed:       7,
		StretchSamples: 10,
	}
}

// TestConfig_Validate walks every documented range violation.
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*experiment.Config)
		want   error
	}{
		{"empty n list", func(c *experiment.Config) { c.NValues = nil }, experiment.ErrNoParameters},
		{"empty p list", func(c *experiment.Config) { c.PValues = nil }, experiment.ErrNoParameters},
		{"empty k list", func(c *experiment.Config) { c.KValues = nil }, experiment.ErrNoParameters},
		{"n too small", func(c *experiment.Config) { c.NValues = []int{1} }, experiment.ErrBadVertexCount},
		{"p negative", func(c *experiment.Config) { c.PValues = []float64{-0.1} }, experiment.ErrBadProbability},
		{"p above one", func(c *experiment.Config) { c.PValues = []float64{1.5} }, experiment.ErrBadProbability},
		{"k below two", func(c *experiment.Config) { c.KValues = []int{1} }, experiment.ErrBadK},
		{"k beyond ln(n)", func(c *experiment.Config) { c.KValues = []int{5} }, experiment.ErrBadK},
		{"no reps", func(c *experiment.Config) { c.Reps = 0 }, experiment.ErrBadReps},
		{"negative samples", func(c *experiment.Config) { c.StretchSamples = -1 }, experiment.ErrBadSampleCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

// TestConfig_Runs checks the product arithmetic.
func TestConfig_Runs(t *testing.T) {
	require.Equal(t, 2*1*2*2, validConfig().Runs())
}

// TestTheoreticalBound pins exact values and the degenerate inputs.
func TestTheoreticalBound(t *testing.T) {
	require.Equal(t, 2000.0, experiment.TheoreticalBound(100, 2)) // 2·100^1.5
	require.Equal(t, 2.0, experiment.TheoreticalBound(1, 2))
	require.Zero(t, experiment.TheoreticalBound(0, 2))
	require.Zero(t, experiment.TheoreticalBound(10, 0))
}

// TestRunSingle checks one run end to end on a connected-enough sample.
func TestRunSingle(t *testing.T) {
	r, err := experiment.RunSingle(60, 0.2, 2, 0, 7, 10)
	require.NoError(t, err)

	require.NotEmpty(t, r.RunID)
	require.Equal(t, 60, r.N)
	require.Equal(t, 60, r.NOriginal)
	require.Equal(t, int64(7), r.Seed)
	require.Greater(t, r.NComponent, 1)
	require.LessOrEqual(t, r.NComponent, r.NOriginal)
	require.Greater(t, r.EdgesG, 0)
	require.Greater(t, r.EdgesH, 0)
	require.LessOrEqual(t, r.EdgesH, r.EdgesG, "a spanner is a subgraph")
	require.Greater(t, r.Bound, 0.0)
	require.Greater(t, r.SizeRatio, 0.0)

	// The component is connected, so no sample may be non-finite.
	require.Equal(t, 10, r.Edges.Samples)
	require.Equal(t, 10, r.Pairs.Samples)
	require.Zero(t, r.Edges.Infinite)
	require.Zero(t, r.Pairs.Infinite)
	require.Zero(t, r.Pairs.UnreachableG)
	require.LessOrEqual(t, r.Edges.Max, 3.0, "edge stretch obeys 2k−1")
}

// TestRunSingle_Errors checks parameter validation before any work.
func TestRunSingle_Errors(t *testing.T) {
	_, err := experiment.RunSingle(60, 0.2, 2, -1, 7, 10)
	require.ErrorIs(t, err, experiment.ErrBadReps)

	_, err = experiment.RunSingle(1, 0.2, 2, 0, 7, 10)
	require.ErrorIs(t, err, experiment.ErrBadVertexCount)

	_, err = experiment.RunSingle(60, 0.2, 7, 0, 7, 10)
	require.ErrorIs(t, err, experiment.ErrBadK)
}

// TestRunSingle_Determinism checks identical parameters reproduce
// everything but the run identity and the clock.
func TestRunSingle_Determinism(t *testing.T) {
	a, err := experiment.RunSingle(50, 0.15, 2, 1, 42, 8)
	require.NoError(t, err)
	b, err := experiment.RunSingle(50, 0.15, 2, 1, 42, 8)
	require.NoError(t, err)

	require.NotEqual(t, a.RunID, b.RunID, "run identities are fresh")
	require.Equal(t, a.NComponent, b.NComponent)
	require.Equal(t, a.EdgesG, b.EdgesG)
	require.Equal(t, a.EdgesH, b.EdgesH)
	require.Equal(t, a.Edges, b.Edges)
	require.Equal(t, a.Pairs, b.Pairs)
}

// TestRunSuite checks the product is executed in full and the CSV sink
// receives a header plus one row per run.
func TestRunSuite(t *testing.T) {
	cfg := validConfig()

	var buf bytes.Buffer
	results, err := experiment.RunSuite(cfg, experiment.WithCSV(&buf))
	require.NoError(t, err)
	require.Len(t, results, cfg.Runs())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, cfg.Runs()+1)
	require.True(t, strings.HasPrefix(lines[0], "run_id,n,p,k,rep,seed"))

	// Fixed sweep order: n outermost, repetitions innermost.
	require.Equal(t, 40, results[0].N)
	require.Equal(t, 2, results[0].K)
	require.Equal(t, 0, results[0].Rep)
	require.Equal(t, 1, results[1].Rep)
	require.Equal(t, 3, results[2].K)
	require.Equal(t, 60, results[cfg.Runs()-1].N)
}

// TestRunSuite_Invalid checks a bad Config is rejected up front.
func TestRunSuite_Invalid(t *testing.T) {
	_, err := experiment.RunSuite(experiment.Config{})
	require.Error(t, err)
	require.True(t, errors.Is(err, experiment.ErrNoParameters))
}

// TestWriteCSV checks the standalone writer matches the stable layout.
func TestWriteCSV(t *testing.T) {
	results, err := experiment.RunSuite(experiment.Config{
		NValues: []int{30}, PValues: []float64{0.2}, KValues: []int{2},
		Reps: 2, BaseSeed: 3, StretchSamples: 5,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteCSV(&buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "size_ratio")
	require.Contains(t, lines[1], results[0].RunID)
}

// TestAggregate checks grouping, ordering and infinite-run accounting
// on handcrafted results.
func TestAggregate(t *testing.T) {
	cell := func(n int, p float64, k, edgesH int, ratio, maxStretch float64) experiment.Result {
		return experiment.Result{
			N: n, P: p, K: k,
			EdgesH:    edgesH,
			SizeRatio: ratio,
			Edges:     stretch.Summary{Samples: 4, Finite: 4, Max: maxStretch},
			Pairs:     stretch.Summary{Samples: 4, Finite: 4, Max: maxStretch},
		}
	}

	results := []experiment.Result{
		cell(100, 0.1, 2, 120, 0.06, 3),
		cell(100, 0.1, 2, 140, 0.07, 1),
		cell(50, 0.1, 2, 60, 0.08, 2),
	}
	// One failed run in the large cell: its stretch stays out of the stats.
	broken := cell(100, 0.1, 2, 130, 0.065, 0)
	broken.Edges = stretch.Summary{Samples: 4, Finite: 3, Infinite: 1}
	results = append(results, broken)

	rows := experiment.Aggregate(results)
	require.Len(t, rows, 2)

	require.Equal(t, 50, rows[0].N, "rows are sorted by n first")
	require.Equal(t, 1, rows[0].Runs)
	require.Equal(t, 60.0, rows[0].EdgesH.Mean)
	require.Zero(t, rows[0].EdgesH.Std, "single-run groups have no spread")

	require.Equal(t, 100, rows[1].N)
	require.Equal(t, 3, rows[1].Runs)
	require.Equal(t, 130.0, rows[1].EdgesH.Mean)
	require.Equal(t, 120.0, rows[1].EdgesH.Min)
	require.Equal(t, 140.0, rows[1].EdgesH.Max)
	require.Equal(t, 1, rows[1].InfiniteRuns)
	require.Equal(t, 2.0, rows[1].EdgeStretchMax.Mean, "finite runs only: (3+1)/2")

	require.Empty(t, experiment.Aggregate(nil))
}
