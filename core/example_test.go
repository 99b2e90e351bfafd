package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// ExampleBuilder demonstrates building a small symmetric graph and querying it.
func ExampleBuilder() {
	// 1) Symmetric builder: every edge is mirrored.
	b := core.NewBuilder(core.WithSymmetric())

	// 2) Add edges (auto-adds vertices 1, 2, 3).
	_ = b.AddEdge(1, 2, 5)
	_ = b.AddEdge(2, 3, 2)

	// 3) Freeze and inspect.
	g := b.Build()
	nb, _ := g.Neighbours(2)
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbours of 2:", nb)
	fmt.Println("Valid:", g.Validate() == nil)

	// Output:
	// Vertices: [1 2 3]
	// Neighbours of 2: [{1 5} {3 2}]
	// Valid: true
}
