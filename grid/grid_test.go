package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/grid"
)

func TestNewGrid_BadExtents(t *testing.T) {
	_, err := grid.NewGrid(0, 4, 2)
	require.ErrorIs(t, err, grid.ErrBadExtents)
}

func TestNewGrid_Shape(t *testing.T) {
	g, err := grid.NewGrid(4, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 4, g.X)
	require.Equal(t, 3, g.Y)
	require.Equal(t, 2, g.L)

	// Layer parity sets the default preferred direction.
	require.Equal(t, grid.Horizontal, g.LayerOrientation(0))
	require.Equal(t, grid.Vertical, g.LayerOrientation(1))
}

func TestSetLayerOrientation_OutOfRange(t *testing.T) {
	g, err := grid.NewGrid(2, 2, 1)
	require.NoError(t, err)
	require.ErrorIs(t, g.SetLayerOrientation(1, grid.Vertical), grid.ErrLayerOutOfRange)
}

func TestTileCenter(t *testing.T) {
	g, err := grid.NewGrid(4, 4, 1)
	require.NoError(t, err)
	g.SetLowerLeft(100, 200)
	g.SetTileSize(10, 20)

	cx, cy := g.TileCenter(2, 1)
	require.Equal(t, 100+2*10+5, cx)
	require.Equal(t, 200+1*20+10, cy)
}

func TestInBoundsXY(t *testing.T) {
	g, err := grid.NewGrid(3, 3, 1)
	require.NoError(t, err)
	require.True(t, g.InBoundsXY(0, 0))
	require.True(t, g.InBoundsXY(2, 2))
	require.False(t, g.InBoundsXY(3, 0))
	require.False(t, g.InBoundsXY(0, -1))
}

func TestHEdgeVEdge_Pointers(t *testing.T) {
	g, err := grid.NewGrid(3, 3, 1)
	require.NoError(t, err)
	e := g.HEdge(0, 1, 0)
	e.Cap = 7
	require.Equal(t, 7, g.HEdge(0, 1, 0).Cap)

	v := g.VEdge(0, 0, 1)
	v.Usage = 3
	require.Equal(t, 3, g.VEdge(0, 0, 1).Usage)
}
