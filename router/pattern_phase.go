// File: pattern_phase.go
// Role: the initial 2D pattern-routing pass applied to a freshly-built
// Steiner tree, before the maze rip-up-and-reroute loop — spec §4.2
// "Degeneracy", §4.3 "L-route"/"Z-route".
package router

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
	"github.com/katalvlaran/groute/pattern"
)

// routeTreeInitial routes every non-degenerate edge of tree with a pattern
// router: axis-aligned segments (one coordinate equal, so a Z bend has no
// room to operate) use the single-bend L router; genuine two-axis
// segments use the double-bend Z router, falling back to L if Z reports
// ErrDegenerateZ. Zero-length edges are tagged NoRoute per spec §4.2
// "Degeneracy" and left for layer assignment to skip.
//
// status tracks each node's pattern.NodeStatus across the whole pass, so
// an L-routed edge that shares a Steiner point with an already-routed
// sibling prices viaCost against that sibling's committed direction
// (spec §4.3 "via_cost is added for each endpoint whose node status
// implies a layer change"), the same way the original runs newrouteL over
// every edge of a net in one ordered pass.
func routeTreeInitial(g *grid.Grid, tree *net.StTree, edgeCost int, viaCost float64) {
	weight := float64(edgeCost)
	status := make(map[int]pattern.NodeStatus, len(tree.Nodes))
	for i := range tree.Edges {
		e := &tree.Edges[i]
		n1, n2 := tree.Nodes[e.N1], tree.Nodes[e.N2]
		if e.Len == 0 {
			// A single-cell grid list (spec §4.2 "Degeneracy"): layer
			// assignment's assignZeroLength still needs one coordinate to
			// seed the coincident nodes' layer envelope from.
			e.Route = net.Route{Type: net.NoRoute, Grid: []net.GridStep{{X: n1.X, Y: n1.Y}}}
			continue
		}

		if n1.X == n2.X || n1.Y == n2.Y {
			e.Route, status[e.N1], status[e.N2] = pattern.RouteL(g, n1.X, n1.Y, n2.X, n2.Y, weight, viaCost, status[e.N1], status[e.N2], true)
			continue
		}

		route, err := pattern.RouteZ(g, n1.X, n1.Y, n2.X, n2.Y, weight)
		if err != nil {
			route, status[e.N1], status[e.N2] = pattern.RouteL(g, n1.X, n1.Y, n2.X, n2.Y, weight, viaCost, status[e.N1], status[e.N2], true)
		}
		e.Route = route
	}
}

// ripupPatternRoute removes the usage a still-pattern-routed edge (LRoute
// or ZRoute) added, using its tree endpoints' current positions. The maze
// router's own rip-up bookkeeping (maze.RouteEdge) only ever reverses a
// prior MazeRoute, so the driver must clear a pattern route's usage itself
// the first time an edge is handed to the maze pass (spec's "Rip-up &
// bookkeeping" component, table §2).
func ripupPatternRoute(g *grid.Grid, tree *net.StTree, edgeID, edgeCost int) {
	e := &tree.Edges[edgeID]
	weight := float64(edgeCost)
	n1, n2 := tree.Nodes[e.N1], tree.Nodes[e.N2]

	switch e.Route.Type {
	case net.LRoute:
		pattern.RipupL(g, e.Route, n1.X, n1.Y, n2.X, n2.Y, weight)
	case net.ZRoute:
		pattern.RipupZ(g, e.Route, n1.X, n1.Y, n2.X, n2.Y, weight)
	}
}
