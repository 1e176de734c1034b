package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/grid"
)

// A capacity adjustment must preserve the 2D/3D invariant: the 2D edge's Cap
// equals the sum of same-direction 3D edge Cap across all layers (testable
// property 4).
func TestAddHCapacity_Projects2D(t *testing.T) {
	g, err := grid.NewGrid(3, 2, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 4))
	require.NoError(t, g.AddHCapacity(1, 6))

	require.Equal(t, 4, g.HEdge(0, 0, 0).Cap)
	require.Equal(t, 6, g.HEdge(1, 0, 0).Cap)
	require.Equal(t, 10, g.HEdge2D(0, 0).Cap)
}

func TestAddVCapacity_Projects2D(t *testing.T) {
	g, err := grid.NewGrid(2, 3, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVCapacity(0, 5))
	require.Equal(t, 5, g.VEdge(0, 0, 0).Cap)
	require.Equal(t, 5, g.VEdge2D(0, 0).Cap)
}

func TestAddCapacity_LayerOutOfRange(t *testing.T) {
	g, err := grid.NewGrid(2, 2, 1)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddHCapacity(5, 1), grid.ErrLayerOutOfRange)
	require.ErrorIs(t, g.AddVCapacity(-1, 1), grid.ErrLayerOutOfRange)
}

type fakeWarner struct {
	calls int
}

func (w *fakeWarner) Warn(code, msg string, args ...interface{}) { w.calls++ }

// Reducing an edge's capacity below zero clamps to zero and reports a
// warning, rather than going negative (spec §4.1, §7 "transient underflows").
func TestAddAdjustment_ReduceClampsAtZero(t *testing.T) {
	g, err := grid.NewGrid(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 4))

	w := &fakeWarner{}
	require.NoError(t, g.AddAdjustment(0, 0, 0, 1, 0, 0, 10, true, w))
	require.Equal(t, 1, w.calls)
	require.Equal(t, 0, g.HEdge(0, 0, 0).Cap)
	require.Equal(t, 4, g.HEdge(0, 0, 0).Red)
	require.Equal(t, 0, g.HEdge2D(0, 0).Cap)
}

func TestAddAdjustment_ReduceWithinBudget(t *testing.T) {
	g, err := grid.NewGrid(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 4))

	w := &fakeWarner{}
	require.NoError(t, g.AddAdjustment(0, 0, 0, 1, 0, 0, 1, true, w))
	require.Equal(t, 0, w.calls)
	require.Equal(t, 3, g.HEdge(0, 0, 0).Cap)
	require.Equal(t, 1, g.HEdge(0, 0, 0).Red)
	require.Equal(t, 3, g.HEdge2D(0, 0).Cap)
}

func TestAddAdjustment_NotAnEdge(t *testing.T) {
	g, err := grid.NewGrid(3, 3, 1)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddAdjustment(0, 0, 0, 2, 2, 0, 1, true, nil), grid.ErrNotAnEdge)
}

func TestAddAdjustment_DifferentLayers(t *testing.T) {
	g, err := grid.NewGrid(3, 3, 2)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddAdjustment(0, 0, 0, 1, 0, 1, 1, true, nil), grid.ErrDifferentLayers)
}

func TestAddAdjustment_Vertical(t *testing.T) {
	g, err := grid.NewGrid(1, 3, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVCapacity(0, 4))
	require.NoError(t, g.AddAdjustment(0, 0, 0, 0, 1, 0, 1, true, nil))
	require.Equal(t, 3, g.VEdge(0, 0, 0).Cap)
}

func TestEdgeGettersSetters(t *testing.T) {
	g, err := grid.NewGrid(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddHCapacity(0, 4))

	require.NoError(t, g.SetEdgeUsage(0, 0, 0, 1, 0, 0, 2))
	usage, err := g.GetEdgeCurrentUsage(0, 0, 0, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, usage)

	require.NoError(t, g.SetEdgeCapacity(0, 0, 0, 1, 0, 0, 9))
	cap, err := g.GetEdgeCapacity(0, 0, 0, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 9, cap)
	require.Equal(t, 9, g.HEdge2D(0, 0).Cap)
}

func TestMinWidthSpacingViaSpacing(t *testing.T) {
	g, err := grid.NewGrid(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddMinWidth(0, 70))
	require.NoError(t, g.AddMinSpacing(0, 70))
	require.NoError(t, g.AddViaSpacing(0, 100))

	stats := g.LayerStats()
	require.Equal(t, 70, stats[0].MinWidth)
	require.Equal(t, 70, stats[0].MinSpacing)
	require.Equal(t, 100, stats[0].ViaSpacing)
}
