package experiment_test

import (
	"fmt"

	"github.com/katalvlaran/spanner/experiment"
)

// ExampleTheoreticalBound evaluates the size yardstick for n=100, k=2:
// 2·100^(3/2).
func ExampleTheoreticalBound() {
	fmt.Println(experiment.TheoreticalBound(100, 2))
	// Output:
	// 2000
}

// ExampleAggregate reduces two repetitions of one sweep cell to a row.
func ExampleAggregate() {
	results := []experiment.Result{
		{N: 100, P: 0.1, K: 2, EdgesH: 120, SizeRatio: 0.06},
		{N: 100, P: 0.1, K: 2, EdgesH: 140, SizeRatio: 0.07},
	}

	rows := experiment.Aggregate(results)
	fmt.Println("rows:", len(rows))
	fmt.Println("runs:", rows[0].Runs)
	fmt.Println("mean edges:", rows[0].EdgesH.Mean)
	// Output:
	// rows: 1
	// runs: 2
	// mean edges: 130
}
