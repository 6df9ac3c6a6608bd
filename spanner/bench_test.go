package spanner_test

import (
	"testing"

	"github.com/katalvlaran/spanner/builder"
	"github.com/katalvlaran/spanner/spanner"
)

// BenchmarkBuild measures the randomized construction on the largest
// component of a G(n, p) sample.
func BenchmarkBuild(b *testing.B) {
	g, err := builder.RandomSparse(2000, 0.01, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, _, err = builder.LargestComponent(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = spanner.Build(g, 3, spanner.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGreedy measures the deterministic baseline on a smaller
// sample; each kept-edge decision costs a bounded BFS probe.
func BenchmarkGreedy(b *testing.B) {
	g, err := builder.RandomSparse(300, 0.05, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, _, err = builder.LargestComponent(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = spanner.Greedy(g, 2); err != nil {
			b.Fatal(err)
		}
	}
}
