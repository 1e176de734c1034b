// File: region.go
// Role: the enlarged bounding-box search region a maze pass is confined
// to — spec §4.4 step 3 ("enlarged search region").
package maze

// Region is an inclusive tile rectangle [XMin,XMax] x [YMin,YMax] the
// search frontier is not allowed to leave.
type Region struct {
	XMin, YMin, XMax, YMax int
}

// Contains reports whether (x,y) lies within the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// enlargeRegion builds the search region around (x1,y1)-(x2,y2), padded by
// pad tiles on every side and clipped to the grid's [0,gw)x[0,gh) extent.
func enlargeRegion(x1, y1, x2, y2, pad, gw, gh int) Region {
	xmin, xmax := x1, x2
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	ymin, ymax := y1, y2
	if ymin > ymax {
		ymin, ymax = ymax, ymin
	}
	xmin -= pad
	ymin -= pad
	xmax += pad
	ymax += pad
	if xmin < 0 {
		xmin = 0
	}
	if ymin < 0 {
		ymin = 0
	}
	if xmax > gw-1 {
		xmax = gw - 1
	}
	if ymax > gh-1 {
		ymax = gh - 1
	}

	return Region{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// expandToCover grows r (in place semantics via return value) so that every
// cell in cells also lies within it, still clipped to [0,gw)x[0,gh).
// Subtree seed cells found by net.SubtreeCells are not guaranteed to lie
// inside the endpoint-derived region (a previously routed detour may wander
// outside it), so the search region must be widened to cover them or the
// seed would be silently dropped.
func expandToCover(r Region, cells []gridPoint, gw, gh int) Region {
	for _, c := range cells {
		if c.X < r.XMin {
			r.XMin = c.X
		}
		if c.X > r.XMax {
			r.XMax = c.X
		}
		if c.Y < r.YMin {
			r.YMin = c.Y
		}
		if c.Y > r.YMax {
			r.YMax = c.Y
		}
	}
	if r.XMin < 0 {
		r.XMin = 0
	}
	if r.YMin < 0 {
		r.YMin = 0
	}
	if r.XMax > gw-1 {
		r.XMax = gw - 1
	}
	if r.YMax > gh-1 {
		r.YMax = gh - 1
	}

	return r
}

// gridPoint is a bare (x,y) cell, used internally where the layer
// dimension of net.GridStep is irrelevant (the 2D maze router never
// changes layer).
type gridPoint struct{ X, Y int }
