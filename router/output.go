// File: output.go
// Role: final output assembly — spec §4.6 "Output" (run()'s segment map,
// updateDbCongestion).
package router

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// GSegment is a single tile-step 3D routing segment: (X1,Y1,Layer1) to
// (X2,Y2,Layer2) differ in exactly one coordinate by one grid step (spec
// §4.6 "GSegment").
type GSegment struct {
	X1, Y1, Layer1 int
	X2, Y2, Layer2 int
}

// collectSegments flattens every routed edge's 3D grid list of tree into
// its tile-step segments, in edge order.
func collectSegments(tree *net.StTree) []GSegment {
	var segs []GSegment
	for i := range tree.Edges {
		steps := tree.Edges[i].Route.Grid
		for k := 0; k+1 < len(steps); k++ {
			a, b := steps[k], steps[k+1]
			segs = append(segs, GSegment{
				X1: a.X, Y1: a.Y, Layer1: a.Layer,
				X2: b.X, Y2: b.Y, Layer2: b.Layer,
			})
		}
	}

	return segs
}

// updateDbCongestion pushes every 3D edge's capacity/usage/blockage into
// sink, per layer and tile (spec §6 "Congestion sink", §4.6
// "updateDbCongestion"). A nil sink is a no-op.
func updateDbCongestion(g *grid.Grid, sink CongestionSink) {
	if sink == nil {
		return
	}
	for layer := 0; layer < g.L; layer++ {
		for y := 0; y < g.Y; y++ {
			for x := 0; x < g.X-1; x++ {
				e := g.HEdge(layer, y, x)
				sink.SetHCapacity(layer, x, y, e.Cap)
				sink.SetHUsage(layer, x, y, e.Usage)
				sink.SetHBlockage(layer, x, y, e.Red)
			}
		}
		for y := 0; y < g.Y-1; y++ {
			for x := 0; x < g.X; x++ {
				e := g.VEdge(layer, y, x)
				sink.SetVCapacity(layer, x, y, e.Cap)
				sink.SetVUsage(layer, x, y, e.Usage)
				sink.SetVBlockage(layer, x, y, e.Red)
			}
		}
	}
}
