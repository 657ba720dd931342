// File: layout/example_test.go
package layout_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/layout"
)

// ExampleApply fills a board completely while leaving room around the
// endpoints.
func ExampleApply() {
	g, _ := gridgraph.NewGrid(5)
	_ = g.SetStart(gridgraph.Pos{Row: 0, Col: 0})
	_ = g.SetEnd(gridgraph.Pos{Row: 4, Col: 4})

	n, _ := layout.Apply(g, layout.Scatter, layout.WithDensity(1))
	fmt.Println("painted:", n)
	fmt.Println(g)

	// Output:
	// painted: 19
	// S.###
	// .####
	// #####
	// ####.
	// ###.E
}
