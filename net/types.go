// File: types.go
// Role: Pin, FrNet, Segment, RouteType, Route, TreeNode, TreeEdge, StTree —
// the per-net data model described in spec §3.
package net

// Pin is one terminal of a net: its grid-tile location and originating layer.
type Pin struct {
	X, Y  int
	Layer int
}

// FrNet is a single net: an opaque external handle, its pins, routing
// weights, and (once built) its Steiner tree.
//
// Handle is caller-defined (e.g. a database net pointer/id in the enclosing
// EDA tool) and is never interpreted by the router; it round-trips into the
// output map key unchanged.
type FrNet struct {
	Handle   interface{}
	Pins     []Pin
	Alpha    float64
	IsClock  bool
	DriverIdx int

	// EdgeCost is the track count consumed per routed 2D edge. Non-default
	// -rule nets have EdgeCost >= 2.
	EdgeCost int

	// EdgeCostPerLayer overrides EdgeCost per metal layer during layer
	// assignment; nil means every layer uses EdgeCost.
	EdgeCostPerLayer []int

	MinLayer, MaxLayer int

	Tree *StTree
}

// Degree returns the pin count d = |Pins|.
func (n *FrNet) Degree() int { return len(n.Pins) }

// EdgeCostForLayer returns the per-layer edge cost, falling back to EdgeCost
// when EdgeCostPerLayer is unset or too short.
func (n *FrNet) EdgeCostForLayer(layer int) int {
	if layer >= 0 && layer < len(n.EdgeCostPerLayer) {
		return n.EdgeCostPerLayer[layer]
	}

	return n.EdgeCost
}

// NewNet validates and constructs a net from its pins. pins must be
// non-empty; driverIdx must index into pins.
func NewNet(handle interface{}, pins []Pin, driverIdx int, edgeCost int) (*FrNet, error) {
	if len(pins) == 0 {
		return nil, ErrEmptyPins
	}
	if driverIdx < 0 || driverIdx >= len(pins) {
		return nil, ErrDriverOutOfRange
	}
	if edgeCost < 1 {
		edgeCost = 1
	}

	return &FrNet{
		Handle:    handle,
		Pins:      pins,
		DriverIdx: driverIdx,
		EdgeCost:  edgeCost,
	}, nil
}

// RouteType tags the representation a tree edge's geometry currently holds.
// The lifecycle is NoRoute -> LRoute -> ZRoute -> MazeRoute(2D) ->
// MazeRoute(3D), with regressions to NoRoute only when the router package
// rebuilds a tree from scratch after a failed re-route (spec §4.4).
type RouteType int

const (
	// NoRoute marks a degenerate (zero-length) or not-yet-routed edge.
	NoRoute RouteType = iota
	// LRoute marks an edge routed by the single-bend L pattern router.
	LRoute
	// ZRoute marks an edge routed by the double-bend Z pattern router.
	ZRoute
	// MazeRoute marks an edge routed by the maze (Dijkstra) router, in
	// either its 2D or 3D form; GridStep.Layer distinguishes the two.
	MazeRoute
)

func (t RouteType) String() string {
	switch t {
	case NoRoute:
		return "NoRoute"
	case LRoute:
		return "LRoute"
	case ZRoute:
		return "ZRoute"
	case MazeRoute:
		return "MazeRoute"
	default:
		return "Unknown"
	}
}

// GridStep is one cell traversed by a maze-routed edge. Consecutive steps in
// a Route.Grid differ by exactly one in X, Y, or Layer.
type GridStep struct {
	X, Y, Layer int
}

// Route is the tagged-variant geometry of a tree edge, replacing the
// original's interleaved short* grid-list/flag-only record (spec §9).
// Exactly one representation is meaningful at a time, selected by Type:
//
//   - NoRoute: no fields meaningful.
//   - LRoute:  XFirst is meaningful.
//   - ZRoute:  HVH and Zpoint are meaningful.
//   - MazeRoute: Grid is meaningful (length routelen+1).
type Route struct {
	Type RouteType

	// XFirst: true routes (x1,y1)-(x2,y1)-(x2,y2); false routes
	// (x1,y1)-(x1,y2)-(x2,y2). Valid only for LRoute.
	XFirst bool

	// HVH: true routes horizontal-vertical-horizontal; false routes
	// vertical-horizontal-vertical. Valid only for ZRoute.
	HVH bool
	// Zpoint is the bend coordinate (x for HVH, y for VHV). Valid only for ZRoute.
	Zpoint int

	// Grid holds the traversed cells in order for a MazeRoute. Its length
	// is routelen+1, where routelen = len(Grid)-1 is the edge count.
	Grid []GridStep
}

// RouteLen returns the number of edges (not cells) the route's grid list
// spans; 0 for non-maze routes.
func (r *Route) RouteLen() int {
	if r.Type != MazeRoute || len(r.Grid) == 0 {
		return 0
	}

	return len(r.Grid) - 1
}

// TreeNode is one node (pin or Steiner point) of a net's Steiner tree arena.
// Nbr/Edge hold up to three neighbours and their incident tree-edge ids;
// -1 marks an empty slot. Status fields are populated during layer
// assignment (spec §4.5).
type TreeNode struct {
	X, Y int

	// IsPin marks a node that corresponds to one of the net's original
	// pins (as opposed to a Steiner point introduced by the tree builder).
	IsPin bool
	// PinIndex is the index into FrNet.Pins when IsPin is true, else -1.
	PinIndex int

	// Nbr/Edge: up to 3 neighbour node ids and their connecting edge ids;
	// unused slots hold -1.
	Nbr  [3]int
	Edge [3]int
	// NbrCount is the number of populated Nbr/Edge slots.
	NbrCount int

	// StackAlias is the canonical node id for this (X,Y) location: when
	// multiple nodes coincide, every alias but the canonical one points
	// here. A node whose StackAlias == its own id is canonical.
	StackAlias int

	// BotL/TopL/HID/LID are populated by layer assignment: the layer
	// envelope this node's incident edges touch, and the tree-edge ids
	// that define the high/low bound.
	BotL, TopL int
	HID, LID   int

	// Hint is an advisory status bit set by some maze-route code paths
	// (spec §9, "advisory hints"); downstream code may set it but must
	// never treat it as authoritative.
	Hint int
}

// addNeighbor appends (nbr, edgeID) to n's neighbour list.
func (n *TreeNode) addNeighbor(nbr, edgeID int) error {
	if n.NbrCount >= 3 {
		return ErrTooManyNeighbors
	}
	n.Nbr[n.NbrCount] = nbr
	n.Edge[n.NbrCount] = edgeID
	n.NbrCount++

	return nil
}

// removeNeighbor deletes the first (nbr, edgeID) pair matching nbr from n's
// neighbour list, compacting the remaining slots.
func (n *TreeNode) removeNeighbor(nbr int) {
	i := 0
	for j := 0; j < n.NbrCount; j++ {
		if n.Nbr[j] == nbr {
			continue
		}
		n.Nbr[i] = n.Nbr[j]
		n.Edge[i] = n.Edge[j]
		i++
	}
	for ; i < n.NbrCount; i++ {
		n.Nbr[i] = -1
		n.Edge[i] = -1
	}
	n.NbrCount--
}

// edgeTo returns the tree-edge id connecting n to nbr, or -1 if not adjacent.
func (n *TreeNode) edgeTo(nbr int) int {
	for j := 0; j < n.NbrCount; j++ {
		if n.Nbr[j] == nbr {
			return n.Edge[j]
		}
	}

	return -1
}

// TreeEdge is one edge of a net's Steiner tree arena, connecting node ids
// N1 and N2. Len is the Manhattan distance of its current geometry; it is
// recomputed whenever the geometry changes.
type TreeEdge struct {
	N1, N2 int
	Len    int
	Route  Route
}

// StTree is the Steiner-tree arena for one net: Nodes[i] and Edges[i] are
// addressed by integer id (slice index), matching the original's flat
// node/edge arrays (spec §9: "arena of nodes with indices").
type StTree struct {
	Deg   int
	Nodes []TreeNode
	Edges []TreeEdge
}
