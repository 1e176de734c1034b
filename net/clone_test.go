package net_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/net"
)

func TestCloneTree_Independence(t *testing.T) {
	tree, err := net.BuildTreeFromBranches(2, []net.Branch{{X: 0, Y: 0, N: 1}, {X: 5, Y: 0, N: 1}})
	require.NoError(t, err)
	tree.Edges[0].Route = net.Route{Type: net.MazeRoute, Grid: []net.GridStep{{X: 0, Y: 0}, {X: 1, Y: 0}}}

	clone := net.CloneTree(tree)
	clone.Edges[0].Route.Grid[0].X = 99
	require.Equal(t, 0, tree.Edges[0].Route.Grid[0].X, "mutating the clone must not affect the original")
}

func TestRestoreTree_RoundTrip(t *testing.T) {
	orig, err := net.BuildTreeFromBranches(2, []net.Branch{{X: 0, Y: 0, N: 1}, {X: 5, Y: 0, N: 1}})
	require.NoError(t, err)
	orig.Edges[0].Route = net.Route{Type: net.MazeRoute, Grid: []net.GridStep{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	backup := net.CloneTree(orig)

	// Mutate orig, then restore from backup.
	orig.Edges[0].Route.Grid = []net.GridStep{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	net.RestoreTree(orig, backup)

	require.Equal(t, backup.Edges[0].Route.Grid, orig.Edges[0].Route.Grid)
}

func TestCloneAllRestoreAll(t *testing.T) {
	t1, _ := net.BuildTreeFromBranches(2, []net.Branch{{X: 0, Y: 0, N: 1}, {X: 1, Y: 0, N: 1}})
	t2, _ := net.BuildTreeFromBranches(2, []net.Branch{{X: 0, Y: 0, N: 1}, {X: 2, Y: 0, N: 1}})
	trees := map[int]*net.StTree{1: t1, 2: t2}
	backup := net.CloneAll(trees)

	trees[1].Nodes[0].X = 42
	net.RestoreAll(trees, backup)
	require.Equal(t, 0, trees[1].Nodes[0].X)
}
