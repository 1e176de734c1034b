// File: monotonic.go
// Role: the exact monotonic-path router — spec §4.3 "routeMonotonic".
package pattern

import (
	"math"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// fromH/fromV tag which neighbour a DP cell's minimum cost came from.
const (
	fromNone = iota
	fromH
	fromV
)

// RouteMonotonic finds the exact minimum-cost path from (x1,y1) to (x2,y2)
// confined to the |y2-y1|+1 x |x2-x1|+1 bounding rectangle, taking only
// steps that move monotonically toward x2 and toward y2 (spec §4.3). The
// path is recorded cell-by-cell as a MazeRoute-typed net.Route and its
// usage is added to the grid.
func RouteMonotonic(g *grid.Grid, x1, y1, x2, y2 int, edgeWeight float64) net.Route {
	dx, dy := 1, 1
	if x2 < x1 {
		dx = -1
	}
	if y2 < y1 {
		dy = -1
	}
	w := absInt(x2-x1) + 1
	h := absInt(y2-y1) + 1

	cost := make([][]float64, h)
	parent := make([][]int, h)
	for j := range cost {
		cost[j] = make([]float64, w)
		parent[j] = make([]int, w)
	}

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i == 0 && j == 0 {
				continue
			}
			best := math.Inf(1)
			par := fromNone
			if i > 0 {
				c := cost[j][i-1] + cellCostH(g, x1, y1, dx, dy, i-1, j)
				if c < best {
					best, par = c, fromH
				}
			}
			if j > 0 {
				c := cost[j-1][i] + cellCostV(g, x1, y1, dx, dy, i, j-1)
				if c < best {
					best, par = c, fromV
				}
			}
			cost[j][i] = best
			parent[j][i] = par
		}
	}

	steps := make([]net.GridStep, 0, w+h-1)
	i, j := w-1, h-1
	for {
		steps = append(steps, net.GridStep{X: x1 + dx*i, Y: y1 + dy*j})
		if i == 0 && j == 0 {
			break
		}
		if parent[j][i] == fromH {
			i--
		} else {
			j--
		}
	}
	for a, b := 0, len(steps)-1; a < b; a, b = a+1, b-1 {
		steps[a], steps[b] = steps[b], steps[a]
	}

	applyMonotonicPath(g, steps, edgeWeight)

	return net.Route{Type: net.MazeRoute, Grid: steps}
}

// RipupMonotonic subtracts the usage a prior RouteMonotonic call added.
func RipupMonotonic(g *grid.Grid, route net.Route, edgeWeight float64) {
	applyMonotonicPath(g, route.Grid, -edgeWeight)
}

// cellCostH/cellCostV cost the single horizontal/vertical DP transition
// into cell (i,j) from (i-1,j) or (i,j-1).
func cellCostH(g *grid.Grid, x1, y1, dx, dy, i, j int) float64 {
	y := y1 + dy*j
	xa, xb := x1+dx*i, x1+dx*(i+1)

	return edgeCost(g.HEdge2D(y, minInt(xa, xb)))
}

func cellCostV(g *grid.Grid, x1, y1, dx, dy, i, j int) float64 {
	x := x1 + dx*i
	ya, yb := y1+dy*j, y1+dy*(j+1)

	return edgeCost(g.VEdge2D(minInt(ya, yb), x))
}

// applyMonotonicPath adds delta to EstUsage of every edge the path's
// consecutive grid steps traverse.
func applyMonotonicPath(g *grid.Grid, steps []net.GridStep, delta float64) {
	for k := 0; k+1 < len(steps); k++ {
		a, b := steps[k], steps[k+1]
		switch {
		case a.Y == b.Y:
			addUsageH(g, a.Y, a.X, b.X, delta)
		case a.X == b.X:
			addUsageV(g, a.X, a.Y, b.Y, delta)
		}
	}
}
