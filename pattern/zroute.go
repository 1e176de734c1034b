// File: zroute.go
// Role: the double-bend Z pattern router — spec §4.3 "newrouteZ".
package pattern

import (
	"math"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// RouteZ routes the 2-pin segment (x1,y1)-(x2,y2) as a double-bend Z shape,
// trying every HVH bend column and every VHV bend row and keeping the
// cheapest. Requires both a non-zero width and height; use RouteL for
// degenerate (axis-aligned) segments.
func RouteZ(g *grid.Grid, x1, y1, x2, y2 int, edgeWeight float64) (net.Route, error) {
	if x1 == x2 || y1 == y2 {
		return net.Route{}, ErrDegenerateZ
	}

	xlo, xhi := minInt(x1, x2), maxInt(x1, x2)
	ylo, yhi := minInt(y1, y2), maxInt(y1, y2)

	bestCost := math.Inf(1)
	bestHVH := true
	bestZ := xhi

	for zx := xlo + 1; zx < xhi; zx++ {
		cost := pathCostH(g, y1, x1, zx) + pathCostV(g, zx, y1, y2) + pathCostH(g, y2, zx, x2)
		if cost < bestCost {
			bestCost, bestHVH, bestZ = cost, true, zx
		}
	}
	for zy := ylo + 1; zy < yhi; zy++ {
		cost := pathCostV(g, x1, y1, zy) + pathCostH(g, zy, x1, x2) + pathCostV(g, x2, zy, y2)
		if cost < bestCost {
			bestCost, bestHVH, bestZ = cost, false, zy
		}
	}

	applyZ(g, x1, y1, x2, y2, bestHVH, bestZ, edgeWeight)

	return net.Route{Type: net.ZRoute, HVH: bestHVH, Zpoint: bestZ}, nil
}

// RipupZ subtracts the usage a prior RouteZ call added.
func RipupZ(g *grid.Grid, route net.Route, x1, y1, x2, y2 int, edgeWeight float64) {
	applyZ(g, x1, y1, x2, y2, route.HVH, route.Zpoint, -edgeWeight)
}

func applyZ(g *grid.Grid, x1, y1, x2, y2 int, hvh bool, z int, delta float64) {
	if hvh {
		addUsageH(g, y1, x1, z, delta)
		addUsageV(g, z, y1, y2, delta)
		addUsageH(g, y2, z, x2, delta)
	} else {
		addUsageV(g, x1, y1, z, delta)
		addUsageH(g, z, x1, x2, delta)
		addUsageV(g, x2, z, y2, delta)
	}
}
