package maze_test

import (
	"fmt"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/net"
)

// Example routes a single tree edge of a 2-pin net through the maze router
// and reports the resulting path length.
func Example() {
	g, err := grid.NewGrid(8, 8, 1)
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

	tree, err := net.BuildTreeFromBranches(2, []net.Branch{
		{X: 0, Y: 0, N: 1},
		{X: 3, Y: 3, N: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	tab := maze.BuildCostTable(4.0, 2.0, 5.0)
	route, _, err := maze.RouteEdge(g, tree, 0, 1, maze.DefaultConfig(), tab, tab, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(route.RouteLen())
	// Output: 6
}
