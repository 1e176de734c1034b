// File: lroute.go
// Role: the single-bend L pattern router — spec §4.3 "newrouteL".
package pattern

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// NodeStatus records, for one endpoint of a pattern-routed segment, which
// axis directions prior edges at that node already committed it to (spec
// §4.3: "via_cost is added for each endpoint whose node status implies a
// layer change"). The zero value StatusNone means the node hasn't been
// touched by any pattern route yet this pass; RouteL both reads and
// updates it, threading the bookkeeping from one edge to the next at a
// shared Steiner point.
type NodeStatus int

const (
	// StatusNone marks a node no prior pattern route has touched.
	StatusNone NodeStatus = 0
	// StatusH is recorded on an endpoint that a prior L route met with its
	// vertical run; RouteL then charges viaCost to the candidate that would
	// meet that endpoint horizontally.
	StatusH NodeStatus = 1
	// StatusV is recorded on an endpoint that a prior L route met with its
	// horizontal run; RouteL then charges viaCost to the candidate that
	// would meet that endpoint vertically.
	StatusV NodeStatus = 2
	// StatusBoth marks a node committed to both directions.
	StatusBoth NodeStatus = StatusH | StatusV
)

// RouteL routes the 2-pin segment (x1,y1)-(x2,y2) with a single bend,
// choosing between the "x-first" path (x1,y1)-(x2,y1)-(x2,y2) and the
// "y-first" path (x1,y1)-(x1,y2)-(x2,y2) by total edge cost plus via_cost,
// ties broken toward preferXFirst. status1/status2 are n1/n2's current
// NodeStatus; a candidate path that would touch an endpoint in a
// direction its status doesn't already commit it to is charged viaCost
// once per such endpoint, modelling the layer change a later via
// insertion would have to make there. It adds edgeWeight to every
// traversed 2D edge's EstUsage and returns the resulting net.Route plus
// n1/n2's NodeStatus after committing to the chosen path, for later
// RipupL and for the next edge sharing either endpoint.
func RouteL(g *grid.Grid, x1, y1, x2, y2 int, edgeWeight, viaCost float64, status1, status2 NodeStatus, preferXFirst bool) (net.Route, NodeStatus, NodeStatus) {
	// viaYFirst/viaXFirst price the via each candidate would force at an
	// endpoint already committed to the other candidate's direction there.
	var viaYFirst, viaXFirst float64
	switch status1 {
	case StatusV:
		viaYFirst = viaCost
	case StatusH:
		viaXFirst = viaCost
	}
	switch status2 {
	case StatusV:
		viaXFirst += viaCost
	case StatusH:
		viaYFirst += viaCost
	}

	costXFirst := viaXFirst + pathCostH(g, y1, x1, x2) + pathCostV(g, x2, y1, y2)
	costYFirst := viaYFirst + pathCostV(g, x1, y1, y2) + pathCostH(g, y2, x1, x2)

	xFirst := costXFirst < costYFirst || (costXFirst == costYFirst && preferXFirst)

	if xFirst {
		addUsageH(g, y1, x1, x2, edgeWeight)
		addUsageV(g, x2, y1, y2, edgeWeight)
		status2 |= StatusH
		status1 |= StatusV
	} else {
		addUsageV(g, x1, y1, y2, edgeWeight)
		addUsageH(g, y2, x1, x2, edgeWeight)
		status1 |= StatusH
		status2 |= StatusV
	}

	return net.Route{Type: net.LRoute, XFirst: xFirst}, status1, status2
}

// RipupL subtracts the usage a prior RouteL call added, for the same
// segment and edgeWeight.
func RipupL(g *grid.Grid, route net.Route, x1, y1, x2, y2 int, edgeWeight float64) {
	if route.XFirst {
		addUsageH(g, y1, x1, x2, -edgeWeight)
		addUsageV(g, x2, y1, y2, -edgeWeight)
	} else {
		addUsageV(g, x1, y1, y2, -edgeWeight)
		addUsageH(g, y2, x1, x2, -edgeWeight)
	}
}
