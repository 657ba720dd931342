// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: detour around a wall
////////////////////////////////////////////////////////////////////////////////

// ExampleRun routes around two barriers and prints the marked board.
func ExampleRun() {
	g, _ := gridgraph.FromStrings([]string{
		"S..",
		"##.",
		"E..",
	})
	g.RefreshNeighbors()

	res, err := search.Run(search.AlgAStar, g, g.Start().Pos(), g.End().Pos())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("found:", res.Found, "steps:", res.Steps())
	fmt.Println(res.Path)
	fmt.Println(g)

	// Output:
	// found: true steps: 6
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
	// S**
	// ##*
	// E**
}

////////////////////////////////////////////////////////////////////////////////
// Example: observing steps
////////////////////////////////////////////////////////////////////////////////

// ExampleWithStep counts the expansions and path cells reported to the step
// callback.
func ExampleWithStep() {
	g, _ := gridgraph.FromStrings([]string{
		"S...E",
		".....",
		".....",
		".....",
		".....",
	})
	g.RefreshNeighbors()

	phases := map[search.Phase]int{}
	res, _ := search.AStar(g, g.Start().Pos(), g.End().Pos(),
		search.WithStep(func(s search.Step) { phases[s.Phase]++ }),
	)

	fmt.Println("expand steps:", phases[search.PhaseExpand])
	fmt.Println("path steps:", phases[search.PhasePath])
	fmt.Println("expanded:", res.Expanded)

	// Output:
	// expand steps: 4
	// path steps: 3
	// expanded: 4
}
