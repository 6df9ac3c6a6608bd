package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spanner/builder"
	"github.com/katalvlaran/spanner/core"
)

// ExampleLargestComponent reduces a disconnected sample to the connected,
// contiguously-labeled input the spanner constructions expect.
func ExampleLargestComponent() {
	// Two components: a triangle {0,3,5} and an edge {1,2}; 4 isolated.
	g, _ := core.NewGraph(6)
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(3, 5)
	_ = g.AddEdge(5, 0)
	_ = g.AddEdge(1, 2)

	sub, orig, _ := builder.LargestComponent(g)
	fmt.Println("size:", sub.VertexCount())
	fmt.Println("edges:", sub.Edges())
	fmt.Println("original ids:", orig)
	// Output:
	// size: 3
	// edges: [{0 1} {0 2} {1 2}]
	// original ids: [0 3 5]
}

// ExampleCycle shows a deterministic fixture factory.
func ExampleCycle() {
	g, _ := builder.Cycle(4)
	fmt.Println(g.Edges())
	// Output:
	// [{0 1} {0 3} {1 2} {2 3}]
}
