package maze_test

import (
	"testing"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/net"
)

func BenchmarkRouteEdge(b *testing.B) {
	tab := maze.BuildCostTable(4.0, 2.0, 5.0)
	cfg := maze.DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := grid.NewGrid(64, 64, 1)
		if err != nil {
			b.Fatal(err)
		}
		if err := g.AddHCapacity(0, 8); err != nil {
			b.Fatal(err)
		}
		if err := g.AddVCapacity(0, 8); err != nil {
			b.Fatal(err)
		}
		tree, err := net.BuildTreeFromBranches(2, []net.Branch{
			{X: 0, Y: 0, N: 1},
			{X: 40, Y: 30, N: 1},
		})
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := maze.RouteEdge(g, tree, 0, 1, cfg, tab, tab, 0); err != nil {
			b.Fatal(err)
		}
	}
}
