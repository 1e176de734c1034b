// File: cost.go
// Role: shared soft-capacity edge cost and usage-mutation helpers for the
// pattern routers — spec §4.3 "cost = sum over edges of
// max(0, est_usage - cap_lb + red)".
package pattern

import "github.com/katalvlaran/groute/grid"

// capFloor is the fraction of an edge's capacity below which its cost is
// zero (spec §4.3: "cap_lb = 0.9*cap").
const capFloor = 0.9

func capLB(cap int) float64 { return capFloor * float64(cap) }

func edgeCost(e *grid.Edge2D) float64 {
	v := e.EstUsage + float64(e.Red) - capLB(e.Cap)
	if v < 0 {
		return 0
	}

	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// pathCostH sums the cost of every horizontal 2D edge on row y between xa
// and xb (either order).
func pathCostH(g *grid.Grid, y, xa, xb int) float64 {
	lo, hi := minInt(xa, xb), maxInt(xa, xb)
	total := 0.0
	for x := lo; x < hi; x++ {
		total += edgeCost(g.HEdge2D(y, x))
	}

	return total
}

// pathCostV sums the cost of every vertical 2D edge on column x between ya
// and yb (either order).
func pathCostV(g *grid.Grid, x, ya, yb int) float64 {
	lo, hi := minInt(ya, yb), maxInt(ya, yb)
	total := 0.0
	for y := lo; y < hi; y++ {
		total += edgeCost(g.VEdge2D(y, x))
	}

	return total
}

// addUsageH adds delta to EstUsage of every horizontal 2D edge on row y
// between xa and xb. delta is negative for a ripup.
func addUsageH(g *grid.Grid, y, xa, xb int, delta float64) {
	lo, hi := minInt(xa, xb), maxInt(xa, xb)
	for x := lo; x < hi; x++ {
		g.HEdge2D(y, x).EstUsage += delta
	}
}

// addUsageV adds delta to EstUsage of every vertical 2D edge on column x
// between ya and yb.
func addUsageV(g *grid.Grid, x, ya, yb int, delta float64) {
	lo, hi := minInt(ya, yb), maxInt(ya, yb)
	for y := lo; y < hi; y++ {
		g.VEdge2D(y, x).EstUsage += delta
	}
}
