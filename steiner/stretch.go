// File: stretch.go
// Role: congestion-driven coordinate stretching — spec §4.2
// "Congestion-driven" builder variant.
package steiner

import "github.com/katalvlaran/groute/grid"

// StretchCongestion rescales a sorted list of distinct X (or Y) pin
// coordinates proportional to estimated congestion along each consecutive
// interval, per spec §4.2: for interval [coords[i], coords[i+1]), the
// rescaled width is the original width times
// coeff*usage/(width*height*capacity), clamped to at least 1 when the
// original interval was non-zero.
//
// horizontal selects whether usage/capacity are read from the grid's
// horizontal or vertical 2D edges; the orthogonal extent (crossMin,
// crossMax: the Y range for a horizontal stretch) bounds the strip the
// usage sum is taken over.
func StretchCongestion(g *grid.Grid, coords []int, crossMin, crossMax int, coeff float64, horizontal bool) []int {
	if len(coords) == 0 {
		return nil
	}
	out := make([]int, len(coords))
	out[0] = coords[0]

	span := coords[len(coords)-1] - coords[0]
	cross := crossMax - crossMin
	if span <= 0 || cross <= 0 {
		copy(out, coords)

		return out
	}

	for i := 0; i+1 < len(coords); i++ {
		width := coords[i+1] - coords[i]
		scaled := width
		if width > 0 {
			usage := stripUsage(g, coords[i], coords[i+1], crossMin, crossMax, horizontal)
			cap := stripCapacity(g, coords[i], crossMin, horizontal)
			if cap > 0 {
				factor := coeff * usage / (float64(width) * float64(cross) * float64(cap))
				scaled = int(float64(width) * factor)
			}
			if scaled < 1 {
				scaled = 1
			}
		}
		out[i+1] = out[i] + scaled
	}

	return out
}

// stripUsage sums est_usage+red over every same-orientation 2D edge whose
// tile falls in [lo, hi) along the stretched axis and [crossMin, crossMax]
// along the orthogonal axis.
func stripUsage(g *grid.Grid, lo, hi, crossMin, crossMax int, horizontal bool) float64 {
	total := 0.0
	if horizontal {
		for y := crossMin; y <= crossMax && y < g.Y; y++ {
			if y < 0 {
				continue
			}
			for x := lo; x < hi && x < g.X-1; x++ {
				if x < 0 {
					continue
				}
				e := g.HEdge2D(y, x)
				total += e.EstUsage + float64(e.Red)
			}
		}

		return total
	}

	for x := crossMin; x <= crossMax && x < g.X; x++ {
		if x < 0 {
			continue
		}
		for y := lo; y < hi && y < g.Y-1; y++ {
			if y < 0 {
				continue
			}
			e := g.VEdge2D(y, x)
			total += e.EstUsage + float64(e.Red)
		}
	}

	return total
}

// stripCapacity returns a representative edge capacity for the strip,
// sampled at its first row/column, matching the original's single
// "h_capacity"/"v_capacity" divisor.
func stripCapacity(g *grid.Grid, at, cross int, horizontal bool) int {
	if cross < 0 {
		cross = 0
	}
	if at < 0 {
		at = 0
	}
	if horizontal {
		if cross >= g.Y || at >= g.X-1 {
			return 0
		}

		return g.HEdge2D(cross, at).Cap
	}
	if at >= g.Y-1 || cross >= g.X {
		return 0
	}

	return g.VEdge2D(at, cross).Cap
}
