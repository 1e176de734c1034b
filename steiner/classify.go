// File: classify.go
// Role: net-shape classification helpers that drive coeffV selection —
// spec §4.2 "Net classification".
package steiner

// BoundingBox returns the min/max X and Y across a pin-coordinate list.
// Panics if xs or ys is empty; callers must validate pin count first.
func BoundingBox(xs, ys []int) (xmin, ymin, xmax, ymax int) {
	xmin, xmax = xs[0], xs[0]
	ymin, ymax = ys[0], ys[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] < xmin {
			xmin = xs[i]
		}
		if xs[i] > xmax {
			xmax = xs[i]
		}
	}
	for i := 1; i < len(ys); i++ {
		if ys[i] < ymin {
			ymin = ys[i]
		}
		if ys[i] > ymax {
			ymax = ys[i]
		}
	}

	return xmin, ymin, xmax, ymax
}

// HTreeSuite reports whether a net's bounding box favors a vertical trunk
// (an "H-tree" laid out tall): (ymax-ymin) > 3*(xmax-xmin).
func HTreeSuite(xmin, ymin, xmax, ymax int) bool {
	return (ymax - ymin) > 3*(xmax-xmin)
}

// VTreeSuite reports whether a net's bounding box favors a horizontal
// trunk: (xmax-xmin) > 3*(ymax-ymin).
func VTreeSuite(xmin, ymin, xmax, ymax int) bool {
	return (xmax - xmin) > 3*(ymax-ymin)
}

// CoeffADJ derives the vertical scaling coefficient from a net's historical
// horizontal/vertical edge usage (spec §4.2: "coeffADJ(net) ∈ [1.2, …]
// derived from H/V usage ratio"). Nets whose routed history leans vertical
// get a coefficient closer to the 1.36 ceiling, biasing future rebuilds
// further toward a vertical trunk.
func CoeffADJ(hUsage, vUsage float64) float64 {
	const (
		floor = 1.2
		ceil  = 1.36
	)
	if hUsage <= 0 {
		return ceil
	}
	coeff := floor + 0.16*(vUsage/hUsage)
	if coeff > ceil {
		return ceil
	}
	if coeff < floor {
		return floor
	}

	return coeff
}
