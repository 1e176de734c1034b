package layer3d

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

func newAssignGrid(t *testing.T, layers int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(6, 2, layers)
	require.NoError(t, err)
	for l := 0; l < layers; l++ {
		require.NoError(t, g.AddHCapacity(l, 4))
		require.NoError(t, g.AddVCapacity(l, 4))
	}

	return g
}

func newTwoPinTree(t *testing.T) *net.StTree {
	t.Helper()
	tree, err := net.BuildTreeFromBranches(2, []net.Branch{
		{X: 0, Y: 0, N: 1},
		{X: 3, Y: 0, N: 1},
	})
	require.NoError(t, err)
	tree.Edges[0].Route = net.Route{
		Type: net.MazeRoute,
		Grid: []net.GridStep{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	}

	return tree
}

func TestAssignEdge_PinEnvelopeForcesLayer(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)
	InitPinLayers(tree)

	cfg := NewConfig(2)
	require.NoError(t, AssignEdge(g, tree, 0, 0, 1, cfg))

	for _, step := range tree.Edges[0].Route.Grid {
		require.Equal(t, 0, step.Layer)
	}
	require.Equal(t, 0, tree.Nodes[0].BotL)
	require.Equal(t, 0, tree.Nodes[0].TopL)
}

func TestAssignEdge_UnassignedPicksLowestLayerOnTie(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)

	cfg := NewConfig(2)
	require.NoError(t, AssignEdge(g, tree, 0, 0, 1, cfg))

	for _, step := range tree.Edges[0].Route.Grid {
		require.Equal(t, 0, step.Layer)
	}
}

func TestAssignEdge_RoutesAroundSaturatedLayer(t *testing.T) {
	g := newAssignGrid(t, 2)
	for x := 0; x < 3; x++ {
		g.HEdge(0, 0, x).Usage = g.HEdge(0, 0, x).Cap
	}
	tree := newTwoPinTree(t)

	cfg := NewConfig(2)
	require.NoError(t, AssignEdge(g, tree, 0, 0, 1, cfg))

	for _, step := range tree.Edges[0].Route.Grid {
		require.Equal(t, 1, step.Layer, "layer 0 is saturated, must route on layer 1")
	}
}

func TestAssignEdge_NoFeasibleLayer(t *testing.T) {
	g := newAssignGrid(t, 1)
	for x := 0; x < 3; x++ {
		g.HEdge(0, 0, x).Usage = g.HEdge(0, 0, x).Cap
	}
	tree := newTwoPinTree(t)

	cfg := NewConfig(1)
	err := AssignEdge(g, tree, 0, 0, 1, cfg)
	require.ErrorIs(t, err, ErrNoLayerPath)
}

func TestAssignEdge_UnroutedEdge(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)
	tree.Edges[0].Route = net.Route{}

	cfg := NewConfig(2)
	err := AssignEdge(g, tree, 0, 0, 1, cfg)
	require.ErrorIs(t, err, ErrEdgeNotRouted)
}

func TestAssignEdge_MismatchedLayerCount(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)

	cfg := NewConfig(3)
	err := AssignEdge(g, tree, 0, 0, 1, cfg)
	require.ErrorIs(t, err, ErrBadLayerCount)
}

func TestAssignNet_WholeTreeConverges(t *testing.T) {
	g := newAssignGrid(t, 2)
	tree := newTwoPinTree(t)
	InitPinLayers(tree)

	cfg := NewConfig(2)
	require.NoError(t, AssignNet(g, tree, cfg))
	require.NoError(t, CheckRoute3D(tree))
}
