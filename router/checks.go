// File: checks.go
// Role: 2D route-integrity checking and tree-rebuild-on-failure — spec §4.4
// "Failure" and §7 "Route-integrity failures" (checkRoute2DTree,
// reInitTree).
package router

import "github.com/katalvlaran/groute/net"

// checkRoute2DTree verifies that every MazeRoute edge's grid list is
// contiguous (consecutive cells differ by exactly one in exactly one of
// X, Y) and that its first/last cell matches its tree endpoints' current
// position. Pattern-routed edges (LRoute/ZRoute) and zero-length edges
// carry no grid list and are implicitly valid by construction, so they
// are skipped (spec §4.4 step 8 only ever mutates MazeRoute edges).
func checkRoute2DTree(tree *net.StTree) error {
	for i := range tree.Edges {
		e := &tree.Edges[i]
		if e.Route.Type != net.MazeRoute || len(e.Route.Grid) == 0 {
			continue
		}
		steps := e.Route.Grid
		for k := 0; k+1 < len(steps); k++ {
			dx := absInt(steps[k].X - steps[k+1].X)
			dy := absInt(steps[k].Y - steps[k+1].Y)
			if dx+dy != 1 {
				return ErrRouteIntegrity
			}
		}

		n1, n2 := tree.Nodes[e.N1], tree.Nodes[e.N2]
		first, last := steps[0], steps[len(steps)-1]
		matchesFwd := first.X == n1.X && first.Y == n1.Y && last.X == n2.X && last.Y == n2.Y
		matchesRev := first.X == n2.X && first.Y == n2.Y && last.X == n1.X && last.Y == n1.Y
		if !matchesFwd && !matchesRev {
			return ErrRouteIntegrity
		}
	}

	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// reinitTree rebuilds n's Steiner tree from scratch via the configured
// builder (spec §4.4 "Failure": "the tree is rebuilt via a fresh RSMT
// call (reInitTree) and the pass aborts"). The rebuilt tree starts at
// NoRoute on every edge; the caller is responsible for re-running the
// pattern-routing phase on it before the next maze pass.
func reinitTree(n *net.FrNet, builder SteinerTreeBuilder, accuracy int) error {
	xs := make([]int, len(n.Pins))
	ys := make([]int, len(n.Pins))
	for i, p := range n.Pins {
		xs[i] = p.X
		ys[i] = p.Y
	}

	tree, err := builder.MakeSteinerTree(xs, ys, nil, accuracy)
	if err != nil {
		return ErrTreeBuildFailed
	}
	n.Tree = tree

	return nil
}
