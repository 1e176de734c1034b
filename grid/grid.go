// File: grid.go
// Role: grid construction and tile/coordinate mapping — spec §4.1
// (set_grid, setLowerLeft, setTileSize, setLayerOrientation) and §6
// (setGridsAndLayers).
package grid

// NewGrid constructs an empty Grid with the given extents. All capacities
// start at zero; call AddHCapacity/AddVCapacity per layer before routing.
//
// Complexity: O(X*Y*L).
func NewGrid(x, y, l int) (*Grid, error) {
	if x <= 0 || y <= 0 || l <= 0 {
		return nil, ErrBadExtents
	}

	g := &Grid{X: x, Y: y, L: l, tileW: 1, tileH: 1, layers: make([]layerInfo, l)}
	g.h3D = make([][][]Edge3D, l)
	g.v3D = make([][][]Edge3D, l)
	for layer := 0; layer < l; layer++ {
		g.h3D[layer] = make([][]Edge3D, y)
		for row := 0; row < y; row++ {
			g.h3D[layer][row] = make([]Edge3D, maxInt(x-1, 0))
		}
		g.v3D[layer] = make([][]Edge3D, maxInt(y-1, 0))
		for row := range g.v3D[layer] {
			g.v3D[layer][row] = make([]Edge3D, x)
		}
		// Alternate preferred direction by layer, the usual fabric
		// convention (spec §3 "preferred direction").
		if layer%2 == 0 {
			g.layers[layer].orientation = Horizontal
		} else {
			g.layers[layer].orientation = Vertical
		}
	}

	g.h2D = make([][]Edge2D, y)
	for row := 0; row < y; row++ {
		g.h2D[row] = make([]Edge2D, maxInt(x-1, 0))
	}
	g.v2D = make([][]Edge2D, maxInt(y-1, 0))
	for row := range g.v2D {
		g.v2D[row] = make([]Edge2D, x)
	}

	return g, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// SetLowerLeft records the metric-space origin of tile (0,0).
func (g *Grid) SetLowerLeft(x0, y0 int) { g.lowerLeftX, g.lowerLeftY = x0, y0 }

// SetTileSize records the metric width/height of one tile.
func (g *Grid) SetTileSize(w, h int) { g.tileW, g.tileH = w, h }

// SetLayerOrientation overrides a layer's preferred routing direction.
func (g *Grid) SetLayerOrientation(layer int, dir Orientation) error {
	if layer < 0 || layer >= g.L {
		return ErrLayerOutOfRange
	}
	g.layers[layer].orientation = dir

	return nil
}

// LayerOrientation returns a layer's preferred routing direction.
func (g *Grid) LayerOrientation(layer int) Orientation { return g.layers[layer].orientation }

// TileCenter maps a tile (x,y) to its real-coordinate center, via
// x_corner/y_corner/w_tile/h_tile (spec §4.6).
func (g *Grid) TileCenter(x, y int) (cx, cy int) {
	return g.lowerLeftX + x*g.tileW + g.tileW/2, g.lowerLeftY + y*g.tileH + g.tileH/2
}

// InBoundsXY reports whether (x,y) lies within the grid's tile extents.
func (g *Grid) InBoundsXY(x, y int) bool {
	return x >= 0 && x < g.X && y >= 0 && y < g.Y
}

// HEdge returns a pointer to the H(layer,y,x) 3D edge.
func (g *Grid) HEdge(layer, y, x int) *Edge3D { return &g.h3D[layer][y][x] }

// VEdge returns a pointer to the V(layer,y,x) 3D edge.
func (g *Grid) VEdge(layer, y, x int) *Edge3D { return &g.v3D[layer][y][x] }

// HEdge2D returns a pointer to the horizontal 2D projection edge at (y,x).
func (g *Grid) HEdge2D(y, x int) *Edge2D { return &g.h2D[y][x] }

// VEdge2D returns a pointer to the vertical 2D projection edge at (y,x).
func (g *Grid) VEdge2D(y, x int) *Edge2D { return &g.v2D[y][x] }
