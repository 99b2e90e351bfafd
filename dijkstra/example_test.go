// Package dijkstra_test provides examples demonstrating how to drive the
// step-wise solver. Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// ExampleSolver_Advance steps through the first few micro-steps of the
// reference scenario and prints what each call did.
func ExampleSolver_Advance() {
	// 1) Build the five-vertex scenario graph.
	g, err := builder.BuildGraph(nil, nil, builder.Scenario())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Create a solver rooted at vertex 1.
	s, err := dijkstra.New(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Advance four times: select 1, put the cursor on 1→2, relax 1→2, relax 1→5.
	for i := 0; i < 4; i++ {
		st := s.Advance()
		fmt.Printf("%-11s vertex=%d edge=%v improved=%v phase=%s\n",
			st.Action, st.Vertex, st.HasEdge, st.Improved, st.To)
	}

	// Output:
	// select      vertex=1 edge=false improved=false phase=SelectingVertex
	// begin-edges vertex=1 edge=true improved=false phase=VisitingEdges
	// relax       vertex=1 edge=true improved=true phase=VisitingEdges
	// relax       vertex=1 edge=true improved=true phase=Idle
}

// ExampleSolver_ShortestPathTo runs the scenario to completion and
// reconstructs the path to vertex 3.
func ExampleSolver_ShortestPathTo() {
	g, _ := builder.BuildGraph(nil, nil, builder.Scenario())
	s, _ := dijkstra.New(g, 1)

	steps := s.Run()
	path, err := s.ShortestPathTo(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, _ := s.Entry(3)
	fmt.Printf("steps=%d dist=%d path=%v\n", steps, e.Distance, path)

	// Output: steps=19 dist=6 path=[5 4 2 3]
}
