// File: route.go
// Role: the per-edge maze-routing procedure — spec §4.4 steps 1-8
// (newRipupCheck, rip-up, enlarged region, BFS seeding, Dijkstra, tree
// rewiring, commit).
package maze

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// RouteEdge re-routes tree edge edgeID of tree through the maze router if
// it is currently congestion-eligible for rip-up, rewiring the tree's
// endpoints to match the search's actual path and committing the new
// usage to g. edgeCost is the per-edge track count to commit (FrNet's
// EdgeCost/EdgeCostForLayer); iter is the current rip-up-and-reroute
// iteration, used to grow the search region over successive passes.
//
// Returns the edge's resulting Route and whether it was actually
// re-routed (false means the edge was left untouched because it was not
// rip-up eligible). An ErrNoPath failure leaves the tree and grid usage
// exactly as they were before the call (the old route, if any, is
// re-committed).
func RouteEdge(g *grid.Grid, tree *net.StTree, edgeID, edgeCost int, cfg Config, htab, vtab CostTable, iter int) (net.Route, bool, error) {
	if edgeID < 0 || edgeID >= len(tree.Edges) {
		return net.Route{}, false, ErrBadEdge
	}

	e := &tree.Edges[edgeID]
	if !needsRipup(g, e, cfg.RipupThreshold) {
		return e.Route, false, nil
	}

	n1, n2 := e.N1, e.N2
	oldLen := e.Route.RouteLen()
	if oldLen == 0 {
		oldLen = e.Len
	}
	hadOldRoute := e.Route.Type == net.MazeRoute && len(e.Route.Grid) > 1
	if hadOldRoute {
		commitPath(g, e.Route.Grid, -edgeCost)
	}

	pad := cfg.EnlargeForIter(iter, oldLen)
	region := enlargeRegion(tree.Nodes[n1].X, tree.Nodes[n1].Y, tree.Nodes[n2].X, tree.Nodes[n2].Y, pad, g.X, g.Y)

	srcSteps := net.SubtreeCells(tree, n1, edgeID)
	dstSteps := net.SubtreeCells(tree, n2, edgeID)
	srcPts := toGridPoints(srcSteps)
	dstPts := toGridPoints(dstSteps)
	region = expandToCover(region, srcPts, g.X, g.Y)
	region = expandToCover(region, dstPts, g.X, g.Y)

	path, err := multiSourceDijkstra(g, region, srcPts, dstPts, htab, vtab, cfg.L)
	if err != nil {
		if hadOldRoute {
			commitPath(g, e.Route.Grid, edgeCost) // restore what we ripped up
		}

		return e.Route, false, err
	}

	steps := toGridSteps(path)
	E1, E2 := steps[0], steps[len(steps)-1]

	if err := rewireEndpoint(tree, n1, edgeID, E1.X, E1.Y); err != nil {
		if hadOldRoute {
			commitPath(g, e.Route.Grid, edgeCost)
		}

		return e.Route, false, err
	}
	if err := rewireEndpoint(tree, n2, edgeID, E2.X, E2.Y); err != nil {
		if hadOldRoute {
			commitPath(g, e.Route.Grid, edgeCost)
		}

		return e.Route, false, err
	}

	commitPath(g, steps, edgeCost)

	e = &tree.Edges[edgeID] // rewiring may have touched other slots; refetch for clarity
	e.Route = net.Route{Type: net.MazeRoute, Grid: steps}
	e.Len = absInt(E1.X-E2.X) + absInt(E1.Y-E2.Y)

	return e.Route, true, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func toGridPoints(steps []net.GridStep) []gridPoint {
	out := make([]gridPoint, len(steps))
	for i, s := range steps {
		out[i] = gridPoint{X: s.X, Y: s.Y}
	}

	return out
}

func toGridSteps(pts []gridPoint) []net.GridStep {
	out := make([]net.GridStep, len(pts))
	for i, p := range pts {
		out[i] = net.GridStep{X: p.X, Y: p.Y}
	}

	return out
}
