package layer3d

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/net"
)

func TestFillVias_NoOpWhenEnvelopeFlat(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)
	InitPinLayers(tree)
	cfg := NewConfig(2)
	require.NoError(t, AssignNet(g, tree, cfg))

	before := len(tree.Edges[0].Route.Grid)
	FillVias(tree)
	require.Equal(t, before, len(tree.Edges[0].Route.Grid))
	require.Equal(t, 0, ThreeDVia(tree))
	require.NoError(t, CheckRoute3D(tree))
}

func TestFillVias_BridgesSpanningEnvelope(t *testing.T) {
	_ = newAssignGrid(t, 3) // unused grid, via filling is tree-local
	tree := newTwoPinTree(t)
	for i := range tree.Edges[0].Route.Grid {
		tree.Edges[0].Route.Grid[i].Layer = 1
	}
	tree.Nodes[0].BotL, tree.Nodes[0].TopL = 0, 2
	tree.Nodes[0].HID, tree.Nodes[0].LID = 0, 0
	tree.Nodes[1].BotL, tree.Nodes[1].TopL = 1, 1
	tree.Nodes[1].HID, tree.Nodes[1].LID = 0, 0

	before := len(tree.Edges[0].Route.Grid)
	FillVias(tree)
	after := tree.Edges[0].Route.Grid
	require.Equal(t, before+1, len(after), "one via cell should bridge layers 0..1 at node0")
	require.Equal(t, 0, after[0].Layer)
	require.Equal(t, 1, after[1].Layer)
	require.Equal(t, net.MazeRoute, tree.Edges[0].Route.Type)
	require.Equal(t, 1, ThreeDVia(tree))
	require.NoError(t, CheckRoute3D(tree))
}

func TestCheckRoute3D_RejectsDiagonalStep(t *testing.T) {
	tree := newTwoPinTree(t)
	tree.Edges[0].Route.Grid = []net.GridStep{{X: 0, Y: 0, Layer: 0}, {X: 1, Y: 1, Layer: 0}}
	require.ErrorIs(t, CheckRoute3D(tree), ErrDiscontiguousRoute)
}

func TestCheckRoute3D_RejectsLayerSkip(t *testing.T) {
	tree := newTwoPinTree(t)
	tree.Edges[0].Route.Grid = []net.GridStep{{X: 0, Y: 0, Layer: 0}, {X: 0, Y: 0, Layer: 2}}
	require.ErrorIs(t, CheckRoute3D(tree), ErrDiscontiguousRoute)
}

func TestWirelength_AddsThreeTimesViaCount(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)
	InitPinLayers(tree)
	require.NoError(t, AssignNet(g, tree, NewConfig(2)))

	flat := 0
	for i := range tree.Edges {
		if n := len(tree.Edges[i].Route.Grid); n > 0 {
			flat += n - 1
		}
	}
	require.Equal(t, flat+3*ThreeDVia(tree), Wirelength(tree))
}
