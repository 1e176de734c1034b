// File: capacity.go
// Role: per-layer capacity accumulation and single-edge capacity
// adjustment — spec §4.1 (add_h_capacity, add_v_capacity, add_adjustment)
// and §6 (addVCapacity, addHCapacity, addAdjustment).
package grid

// AddHCapacity sets layer's horizontal-edge capacity and folds it into
// every horizontal 2D edge's Cap, preserving the 2D/3D invariant (spec §4.1,
// testable property 4).
func (g *Grid) AddHCapacity(layer, cap int) error {
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	g.layers[layer].hCap = cap
	for y := 0; y < g.Y; y++ {
		for x := 0; x < g.X-1; x++ {
			g.h3D[layer][y][x].Cap = cap
			g.h2D[y][x].Cap += cap
		}
	}

	return nil
}

// AddVCapacity sets layer's vertical-edge capacity and folds it into every
// vertical 2D edge's Cap.
func (g *Grid) AddVCapacity(layer, cap int) error {
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	g.layers[layer].vCap = cap
	for y := 0; y < g.Y-1; y++ {
		for x := 0; x < g.X; x++ {
			g.v3D[layer][y][x].Cap = cap
			g.v2D[y][x].Cap += cap
		}
	}

	return nil
}

// AddMinWidth/AddMinSpacing/AddViaSpacing record per-layer detailed-routing
// metadata the global-routing algorithm never reads but a downstream
// detailed router does (SPEC_FULL.md "Supplemented features").
func (g *Grid) AddMinWidth(layer, width int) error {
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	g.layers[layer].minWidth = width

	return nil
}

func (g *Grid) AddMinSpacing(layer, spacing int) error {
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	g.layers[layer].minSpacing = spacing

	return nil
}

func (g *Grid) AddViaSpacing(layer, spacing int) error {
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	g.layers[layer].viaSpacing = spacing

	return nil
}

// classifyAdjustment validates that (x1,y1,l1)-(x2,y2,l2) names exactly one
// grid edge (spec §4.1 invariant) and returns whether it is horizontal.
func classifyAdjustment(x1, y1, l1, x2, y2, l2 int) (horizontal bool, x, y, layer int, err error) {
	if l1 != l2 {
		return false, 0, 0, 0, ErrDifferentLayers
	}
	dx, dy := x2-x1, y2-y1
	switch {
	case dy == 0 && (dx == 1 || dx == -1):
		x = x1
		if dx == -1 {
			x = x2
		}

		return true, x, y1, l1, nil
	case dx == 0 && (dy == 1 || dy == -1):
		y = y1
		if dy == -1 {
			y = y2
		}

		return false, x1, y, l1, nil
	default:
		return false, 0, 0, 0, ErrNotAnEdge
	}
}

// Warner receives non-fatal warnings (spec §7 "Transient underflows").
type Warner interface {
	Warn(code, msg string, args ...interface{})
}

// AddAdjustment edits the capacity of one 3D edge, spec §4.1: reducing a 3D
// edge's cap by delta decreases the corresponding 2D edge's cap by delta and
// increases Red by delta; a reduction that would go negative is clamped to
// zero and reported via warn (may be nil to suppress the warning).
func (g *Grid) AddAdjustment(x1, y1, l1, x2, y2, l2, newCap int, isReduce bool, warn Warner) error {
	horizontal, x, y, layer, err := classifyAdjustment(x1, y1, l1, x2, y2, l2)
	if err != nil {
		return err
	}
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	if !g.InBoundsXY(x1, y1) || !g.InBoundsXY(x2, y2) {
		return ErrOutOfBounds
	}

	if horizontal {
		e3 := &g.h3D[layer][y][x]
		e2 := &g.h2D[y][x]
		applyAdjustment(e3, e2, newCap, isReduce, warn)
	} else {
		e3 := &g.v3D[layer][y][x]
		e2 := &g.v2D[y][x]
		applyAdjustment(e3, e2, newCap, isReduce, warn)
	}

	return nil
}

func applyAdjustment(e3 *Edge3D, e2 *Edge2D, newCap int, isReduce bool, warn Warner) {
	if !isReduce {
		delta := newCap - e3.Cap
		e3.Cap = newCap
		e2.Cap += delta

		return
	}

	delta := newCap // isReduce: newCap is the amount to subtract
	if delta > e3.Cap {
		if warn != nil {
			warn.Warn("grid.adjustment.underflow", "reducing 3D edge cap below zero; clamped", "requested", delta, "available", e3.Cap)
		}
		delta = e3.Cap
	}
	e3.Cap -= delta
	e3.Red += delta
	e2.Cap -= delta
	e2.Red += delta
}

// GetEdgeCapacity, GetEdgeCurrentUsage, SetEdgeUsage, SetEdgeCapacity expose
// per-edge accessors for external congestion-map tooling (SPEC_FULL.md
// "Supplemented features"; originally getEdgeCapacity/getEdgeCurrentUsage/
// setEdgeUsage/setEdgeCapacity in FastRoute.h).
func (g *Grid) GetEdgeCapacity(x1, y1, l1, x2, y2, l2 int) (int, error) {
	horizontal, x, y, layer, err := classifyAdjustment(x1, y1, l1, x2, y2, l2)
	if err != nil {
		return 0, err
	}
	if horizontal {
		return g.h3D[layer][y][x].Cap, nil
	}

	return g.v3D[layer][y][x].Cap, nil
}

func (g *Grid) GetEdgeCurrentUsage(x1, y1, l1, x2, y2, l2 int) (int, error) {
	horizontal, x, y, layer, err := classifyAdjustment(x1, y1, l1, x2, y2, l2)
	if err != nil {
		return 0, err
	}
	if horizontal {
		return g.h3D[layer][y][x].Usage, nil
	}

	return g.v3D[layer][y][x].Usage, nil
}

func (g *Grid) SetEdgeUsage(x1, y1, l1, x2, y2, l2, usage int) error {
	horizontal, x, y, layer, err := classifyAdjustment(x1, y1, l1, x2, y2, l2)
	if err != nil {
		return err
	}
	if horizontal {
		g.h3D[layer][y][x].Usage = usage
	} else {
		g.v3D[layer][y][x].Usage = usage
	}

	return nil
}

func (g *Grid) SetEdgeCapacity(x1, y1, l1, x2, y2, l2, cap int) error {
	horizontal, x, y, layer, err := classifyAdjustment(x1, y1, l1, x2, y2, l2)
	if err != nil {
		return err
	}
	if horizontal {
		delta := cap - g.h3D[layer][y][x].Cap
		g.h3D[layer][y][x].Cap = cap
		g.h2D[y][x].Cap += delta
	} else {
		delta := cap - g.v3D[layer][y][x].Cap
		g.v3D[layer][y][x].Cap = cap
		g.v2D[y][x].Cap += delta
	}

	return nil
}
