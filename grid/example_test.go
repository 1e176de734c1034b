package grid_test

import (
	"fmt"

	"github.com/katalvlaran/groute/grid"
)

// Example demonstrates building a single-layer grid, setting its capacity,
// loading it past capacity, and reading back the overflow.
func Example() {
	g, err := grid.NewGrid(3, 1, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := g.AddHCapacity(0, 2); err != nil {
		fmt.Println(err)
		return
	}
	g.HEdge2D(0, 0).Usage = 5

	fmt.Println(g.HEdge2D(0, 0).Overflow())
	// Output: 3
}
