package maze

import (
	"testing"

	"github.com/katalvlaran/groute/grid"
)

func newSearchGrid(t *testing.T, x, y, cap int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(x, y, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddHCapacity(0, cap); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVCapacity(0, cap); err != nil {
		t.Fatal(err)
	}

	return g
}

func TestMultiSourceDijkstra_FindsDirectPath(t *testing.T) {
	g := newSearchGrid(t, 6, 6, 10)
	tab := BuildCostTable(4.0, 2.0, 5.0)
	region := Region{XMin: 0, YMin: 0, XMax: 5, YMax: 5}

	path, err := multiSourceDijkstra(g, region, []gridPoint{{X: 0, Y: 0}}, []gridPoint{{X: 3, Y: 0}}, tab, tab, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path[0] != (gridPoint{X: 0, Y: 0}) {
		t.Fatalf("path should start at source, got %+v", path[0])
	}
	if path[len(path)-1] != (gridPoint{X: 3, Y: 0}) {
		t.Fatalf("path should end at destination, got %+v", path[len(path)-1])
	}
	if len(path) != 4 {
		t.Fatalf("expected 4-cell direct path, got %d: %+v", len(path), path)
	}
}

func TestMultiSourceDijkstra_PicksNearestSeedPair(t *testing.T) {
	g := newSearchGrid(t, 10, 2, 10)
	tab := BuildCostTable(4.0, 2.0, 5.0)
	region := Region{XMin: 0, YMin: 0, XMax: 9, YMax: 1}

	sources := []gridPoint{{X: 0, Y: 0}, {X: 8, Y: 0}}
	dests := []gridPoint{{X: 9, Y: 0}}

	path, err := multiSourceDijkstra(g, region, sources, dests, tab, tab, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path[0] != (gridPoint{X: 8, Y: 0}) {
		t.Fatalf("expected search to start from the nearer seed, got %+v", path[0])
	}
}

func TestMultiSourceDijkstra_AvoidsCongestedEdge(t *testing.T) {
	g := newSearchGrid(t, 4, 3, 10)
	tab := BuildCostTable(4.0, 2.0, 5.0)
	g.HEdge2D(0, 1).Usage = 1000 // block the direct row-0 path near x=1..2
	region := Region{XMin: 0, YMin: 0, XMax: 3, YMax: 2}

	path, err := multiSourceDijkstra(g, region, []gridPoint{{X: 0, Y: 0}}, []gridPoint{{X: 3, Y: 0}}, tab, tab, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range path {
		if p.Y != 0 {
			return // detoured off row 0: avoided the congested edge
		}
	}
	t.Fatalf("expected path to detour around congested edge, stayed on row 0: %+v", path)
}

func TestMultiSourceDijkstra_NoPathWhenRegionBlocksAllRoutes(t *testing.T) {
	g := newSearchGrid(t, 6, 6, 10)
	tab := BuildCostTable(4.0, 2.0, 5.0)
	region := Region{XMin: 0, YMin: 0, XMax: 0, YMax: 0}

	_, err := multiSourceDijkstra(g, region, []gridPoint{{X: 0, Y: 0}}, []gridPoint{{X: 3, Y: 3}}, tab, tab, 1)
	if err != ErrNoPath {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}
