// File: types.go
// Role: Edge3D, Edge2D, Orientation, and the Grid aggregate — spec §3
// "Grid"/"Edge3D"/"Edge2D".
package grid

// Orientation is a metal layer's preferred routing direction.
type Orientation int

const (
	// Horizontal layers prefer routing in the +/-X direction.
	Horizontal Orientation = iota
	// Vertical layers prefer routing in the +/-Y direction.
	Vertical
)

// Edge3D is one tile-to-tile edge on a single metal layer (spec §3).
// Invariant: Usage >= 0; routers may exceed Cap transiently during rip-up.
type Edge3D struct {
	Cap   int
	Usage int
	Red   int // reduction / blockage
}

// Overflow returns max(0, Usage-Cap).
func (e *Edge3D) Overflow() int {
	if e.Usage > e.Cap {
		return e.Usage - e.Cap
	}

	return 0
}

// Edge2D is the same-direction projection of Edge3D used by 2D routing
// (spec §3). Cap always equals the sum of same-direction Edge3D.Cap across
// all layers (testable property 4).
type Edge2D struct {
	Cap        int
	Usage      int
	EstUsage   float64
	Red        int
	LastUsage  float64 // history term
	CongCNT    int     // overflow-count history
}

// Overflow returns max(0, Usage-Cap).
func (e *Edge2D) Overflow() int {
	if e.Usage > e.Cap {
		return e.Usage - e.Cap
	}

	return 0
}

// layerInfo tracks per-layer ambient metadata that the routing algorithm
// itself never consumes but a downstream detailed router reads (SPEC_FULL.md
// "Supplemented features": addMinWidth/addMinSpacing/addViaSpacing).
type layerInfo struct {
	orientation Orientation
	hCap        int
	vCap        int
	minWidth    int
	minSpacing  int
	viaSpacing  int
}

// Grid is the 3D array of routing tiles and the 2D/3D edges between them.
// It is exclusively owned by one Router.Run call (spec §5); it carries no
// internal mutex.
type Grid struct {
	X, Y, L int

	lowerLeftX, lowerLeftY int
	tileW, tileH           int

	layers []layerInfo

	// h3D[layer][y][x] is the H(layer,y,x) edge for x in [0,X-1); v3D is
	// the analogous vertical array for y in [0,Y-1).
	h3D [][][]Edge3D
	v3D [][][]Edge3D

	// h2D[y][x] / v2D[y][x] are the 2D projections, one per direction,
	// independent of layer.
	h2D [][]Edge2D
	v2D [][]Edge2D
}
