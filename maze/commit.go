// File: commit.go
// Role: usage accounting for committed maze routes — spec §4.4 step 8
// ("commit") and step 1 ("newRipupCheck").
package maze

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// commitPath adds delta to the committed Usage of every 2D edge a maze
// path's consecutive grid steps traverse. delta is negative for a rip-up.
func commitPath(g *grid.Grid, steps []net.GridStep, delta int) {
	for k := 0; k+1 < len(steps); k++ {
		a, b := steps[k], steps[k+1]
		switch {
		case a.Y == b.Y:
			x := a.X
			if b.X < a.X {
				x = b.X
			}
			g.HEdge2D(a.Y, x).Usage += delta
		case a.X == b.X:
			y := a.Y
			if b.Y < a.Y {
				y = b.Y
			}
			g.VEdge2D(y, a.X).Usage += delta
		}
	}
}

// needsRipup is newRipupCheck (spec §4.4 step 1): an edge never routed by
// the maze router must always be routed; a maze-routed edge is only
// eligible for rip-up if some edge along its path sits within threshold
// of going (or already gone) over capacity. This keeps the driver from
// repeatedly re-routing edges nowhere near congested.
func needsRipup(g *grid.Grid, e *net.TreeEdge, threshold int) bool {
	if e.Route.Type != net.MazeRoute || len(e.Route.Grid) < 2 {
		return true
	}
	for k := 0; k+1 < len(e.Route.Grid); k++ {
		a, b := e.Route.Grid[k], e.Route.Grid[k+1]
		var cap, usage, red int
		if a.Y == b.Y {
			x := a.X
			if b.X < a.X {
				x = b.X
			}
			ed := g.HEdge2D(a.Y, x)
			cap, usage, red = ed.Cap, ed.Usage, ed.Red
		} else {
			y := a.Y
			if b.Y < a.Y {
				y = b.Y
			}
			ed := g.VEdge2D(y, a.X)
			cap, usage, red = ed.Cap, ed.Usage, ed.Red
		}
		if usage+red+threshold >= cap {
			return true
		}
	}

	return false
}
