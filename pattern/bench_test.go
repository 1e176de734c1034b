package pattern_test

import (
	"testing"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/pattern"
)

func BenchmarkRouteMonotonic(b *testing.B) {
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

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		route := pattern.RouteMonotonic(g, 0, 0, 40, 30, 1.0)
		pattern.RipupMonotonic(g, route, 1.0)
	}
}
