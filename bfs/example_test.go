package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spanner/bfs"
	"github.com/katalvlaran/spanner/core"
)

// ExampleDistances computes hop distances on a small ring with a chord.
//
//	0───1───2
//	│       │
//	5───4───3   plus chord 0─3
func ExampleDistances() {
	g, _ := core.NewGraph(6)
	for i := 0; i < 6; i++ {
		_ = g.AddEdge(i, (i+1)%6)
	}
	_ = g.AddEdge(0, 3) // chord

	res, err := bfs.Distances(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Dist)
	// Output:
	// [0 1 2 1 2 1]
}

// ExampleResult_PathTo reconstructs a shortest path on a path graph.
func ExampleResult_PathTo() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	res, _ := bfs.Distances(g, 0)
	path, _ := res.PathTo(3)
	fmt.Println(path)
	// Output:
	// [0 1 2 3]
}
