package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/pattern"
)

// Example routes a single 2-pin segment with the L pattern router and
// reports which bend it chose.
func Example() {
	g, err := grid.NewGrid(5, 5, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := g.AddHCapacity(0, 4); err != nil {
		fmt.Println(err)
		return
	}
	if err := g.AddVCapacity(0, 4); err != nil {
		fmt.Println(err)
		return
	}

	route, _, _ := pattern.RouteL(g, 0, 0, 3, 3, 1.0, 0, pattern.StatusNone, pattern.StatusNone, true)
	fmt.Println(route.XFirst)
	// Output: true
}
