package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/grid"
)

func TestLayerStats_CapacityUsageOverflow(t *testing.T) {
	g, err := grid.NewGrid(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 2))
	g.HEdge(0, 0, 0).Usage = 5

	stats := g.LayerStats()
	require.Len(t, stats, 1)
	require.Equal(t, 4, stats[0].Capacity) // two H edges at cap 2 each
	require.Equal(t, 5, stats[0].Usage)
	require.Equal(t, 3, stats[0].Overflow) // 5-2
}

func TestTotalPerLayerHelpers(t *testing.T) {
	g, err := grid.NewGrid(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 3))
	require.NoError(t, g.AddHCapacity(1, 5))

	caps := g.TotalCapacityPerLayer()
	require.Equal(t, []int{6, 10}, caps)
}

func TestMaxOverflowHelpers(t *testing.T) {
	g, err := grid.NewGrid(3, 2, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 1))
	require.NoError(t, g.AddVCapacity(0, 1))
	g.HEdge2D(0, 0).Usage = 4
	g.VEdge2D(0, 0).Usage = 9

	require.Equal(t, 3, g.MaxHorizontalOverflow())
	require.Equal(t, 8, g.MaxVerticalOverflow())
}

func TestTotalOverflow2D(t *testing.T) {
	g, err := grid.NewGrid(2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 1))
	g.HEdge2D(0, 0).Usage = 4
	require.Equal(t, 3, g.TotalOverflow2D())
}

func TestUpdateCongestionHistory_OverflowingEdgeAccumulates(t *testing.T) {
	g, err := grid.NewGrid(2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 1))
	g.HEdge2D(0, 0).Usage = 3 // overflow = 2

	g.UpdateCongestionHistory(true, grid.UpTypeHold, 100)
	e := g.HEdge2D(0, 0)
	require.Equal(t, 1, e.CongCNT)
	require.InDelta(t, 2.0, e.LastUsage, 1e-9)

	g.UpdateCongestionHistory(true, grid.UpTypeHold, 100)
	require.Equal(t, 2, e.CongCNT)
	require.InDelta(t, 4.0, e.LastUsage, 1e-9)
}

func TestUpdateCongestionHistory_NonOverflowingEdgeDecays(t *testing.T) {
	g, err := grid.NewGrid(2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 10))
	e := g.HEdge2D(0, 0)
	e.LastUsage = 10
	e.CongCNT = 3

	g.UpdateCongestionHistory(true, grid.UpTypeHold, 100)
	require.InDelta(t, 9.0, e.LastUsage, 1e-9) // 10 * 0.9
	require.Equal(t, 3, e.CongCNT)             // UpTypeHold: unchanged

	g.UpdateCongestionHistory(false, grid.UpTypeHold, 100)
	require.InDelta(t, 9.0, e.LastUsage, 1e-9) // decay disabled: no change
}

func TestUpdateCongestionHistory_UpTypeDecayFloorsCongCNT(t *testing.T) {
	g, err := grid.NewGrid(2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 10))
	e := g.HEdge2D(0, 0)
	e.CongCNT = 1

	g.UpdateCongestionHistory(true, grid.UpTypeDecay, 100)
	require.Equal(t, 0, e.CongCNT)

	g.UpdateCongestionHistory(true, grid.UpTypeDecay, 100)
	require.Equal(t, 0, e.CongCNT) // floored, never negative
}

func TestUpdateCongestionHistory_StrAccuBoostsPersistentOffenders(t *testing.T) {
	g, err := grid.NewGrid(2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 1))
	e := g.HEdge2D(0, 0)
	e.Usage = 3  // overflow = 2
	e.CongCNT = 5 // already a persistent offender relative to rnd=1

	g.UpdateCongestionHistory(true, grid.UpTypeHold, 1)
	// base: LastUsage += overflow(2) -> 2, CongCNT++ -> 6; str_accu then
	// adds CongCNT(6, post-increment, since CongCNT>rnd checked after) *
	// overflow(2) / 2.
	require.Equal(t, 6, e.CongCNT)
	require.InDelta(t, 2.0+float64(6*2)/2, e.LastUsage, 1e-9)
}

func TestUpdateCongestionHistory_ReturnsMaxAdj(t *testing.T) {
	g, err := grid.NewGrid(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 1))
	g.HEdge2D(0, 0).Usage = 2
	g.HEdge2D(0, 1).Usage = 5

	maxAdj := g.UpdateCongestionHistory(true, grid.UpTypeHold, 100)
	require.InDelta(t, 4.0, maxAdj, 1e-9) // edge at x=1 overflows by 4
}
