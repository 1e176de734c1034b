package layer3d

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

const bigCost = 1 << 30

// canon returns the canonical (stack-aliased) node for n, so that every
// node coincident at the same (x,y) reads and writes one shared layer
// envelope (spec §4.5 step 2, "coalesce nodes that share (x,y) under
// stackAlias").
func canon(tree *net.StTree, n int) *net.TreeNode {
	return &tree.Nodes[tree.Nodes[n].StackAlias]
}

// assigned reports whether n's canonical envelope has already been set by
// a prior edge assignment (or by InitPinLayers).
func assigned(n *net.TreeNode) bool {
	return n.TopL >= 0
}

// updateEnvelope folds layer into n's [BotL,TopL] envelope, recording
// edgeID as the edge that defines whichever bound it extends.
func updateEnvelope(n *net.TreeNode, edgeID, layer int) {
	if !assigned(n) {
		n.BotL, n.TopL = layer, layer
		n.HID, n.LID = edgeID, edgeID

		return
	}
	if layer < n.BotL {
		n.BotL = layer
		n.LID = edgeID
	}
	if layer > n.TopL {
		n.TopL = layer
		n.HID = edgeID
	}
}

// InitPinLayers gives every pin node a default [0,0] layer envelope before
// the tree is walked, matching spec §4.5 step 2: "Pins contribute layer 0
// by default."
func InitPinLayers(tree *net.StTree) {
	for i := range tree.Nodes {
		n := canon(tree, i)
		if tree.Nodes[i].IsPin && !assigned(n) {
			n.BotL, n.TopL = 0, 0
			n.HID, n.LID = -1, -1
		}
	}
}

// layerEdge3D returns the 3D edge between consecutive route cells (x1,y1)
// and (x2,y2) on layer l; the two cells must differ in exactly one
// coordinate by one grid step.
func layerEdge3D(g *grid.Grid, l, x1, y1, x2, y2 int) *grid.Edge3D {
	if x1 == x2 {
		y := y1
		if y2 < y {
			y = y2
		}

		return g.VEdge(l, y, x1)
	}
	x := x1
	if x2 < x {
		x = x2
	}

	return g.HEdge(l, y1, x)
}

// AssignEdge picks a per-cell metal layer for tree edge edgeID's 2D route
// via the dynamic program of spec §4.5 step 3, updates n1/n2's layer
// envelopes, and commits the resulting usage into g's 3D edges. n1 and n2
// must be edgeID's two endpoint node indices, oriented so that n1 is
// visited (and its envelope, if any, already fixed) before n2.
func AssignEdge(g *grid.Grid, tree *net.StTree, edgeID, n1, n2 int, cfg Config) error {
	edge := &tree.Edges[edgeID]
	steps := edge.Route.Grid
	routelen := len(steps) - 1
	if routelen < 0 {
		return ErrEdgeNotRouted
	}
	if cfg.NumLayers != g.L {
		return ErrBadLayerCount
	}
	if routelen == 0 {
		return assignZeroLength(tree, edgeID, n1, n2)
	}
	numLayers := cfg.NumLayers

	layerCap := make([][]int, numLayers)
	for l := 0; l < numLayers; l++ {
		layerCap[l] = make([]int, routelen)
		for k := 0; k < routelen; k++ {
			e := layerEdge3D(g, l, steps[k].X, steps[k].Y, steps[k+1].X, steps[k+1].Y)
			layerCap[l][k] = e.Cap - e.Usage
		}
	}

	gridD := make([][]int, numLayers)
	viaLink := make([][]int, numLayers)
	for l := 0; l < numLayers; l++ {
		gridD[l] = make([]int, routelen+1)
		viaLink[l] = make([]int, routelen+1)
		for k := range gridD[l] {
			gridD[l][k] = bigCost
			viaLink[l][k] = -1
		}
	}

	n1Node := canon(tree, n1)
	if assigned(n1Node) {
		for l := n1Node.BotL; l <= n1Node.TopL; l++ {
			gridD[l][0] = 0
		}
	} else {
		for l := 0; l < numLayers; l++ {
			gridD[l][0] = 0
		}
	}

	for k := 0; k < routelen; k++ {
		viaCost := cfg.ViaCostMid
		if k == 0 {
			viaCost = cfg.ViaCostFirst
		}
		relaxVia(gridD, viaLink, k, numLayers, viaCost)

		for l := 0; l < numLayers; l++ {
			if layerCap[l][k] > 0 {
				gridD[l][k+1] = addCapped(gridD[l][k], 1)
			} else {
				gridD[l][k+1] = addCapped(gridD[l][k], bigCost)
			}
		}
	}
	relaxVia(gridD, viaLink, routelen, numLayers, cfg.ViaCostLast)

	n2Node := canon(tree, n2)
	endLayer, minResult := pickEndLayer(gridD, routelen, n2Node, numLayers)
	if minResult >= bigCost {
		return ErrNoLayerPath
	}

	reconstructLayers(steps, viaLink, endLayer, routelen)

	updateEnvelope(n1Node, edgeID, steps[0].Layer)
	updateEnvelope(n2Node, edgeID, steps[routelen].Layer)

	for k := 0; k < routelen; k++ {
		l := steps[k].Layer
		layerEdge3D(g, l, steps[k].X, steps[k].Y, steps[k+1].X, steps[k+1].Y).Usage++
	}

	return nil
}

// relaxVia applies one round of the via-crossing relaxation at grid index
// k: for every ordered pair of distinct layers (l,i), try reaching i via a
// same-index via from l.
func relaxVia(gridD, viaLink [][]int, k, numLayers, viaCost int) {
	for l := 0; l < numLayers; l++ {
		for i := 0; i < numLayers; i++ {
			if i == l {
				continue
			}
			cand := addCapped(gridD[l][k], absInt(i-l)*viaCost)
			if cand < gridD[i][k] {
				gridD[i][k] = cand
				viaLink[i][k] = l
			}
		}
	}
}

func pickEndLayer(gridD [][]int, routelen int, n2Node *net.TreeNode, numLayers int) (int, int) {
	endLayer, minResult := 0, bigCost
	if assigned(n2Node) {
		for i := n2Node.TopL; i >= n2Node.BotL; i-- {
			if gridD[i][routelen] < minResult {
				minResult = gridD[i][routelen]
				endLayer = i
			}
		}
	} else {
		for i := 0; i < numLayers; i++ {
			if gridD[i][routelen] < minResult {
				minResult = gridD[i][routelen]
				endLayer = i
			}
		}
	}

	return endLayer, minResult
}

func reconstructLayers(steps []net.GridStep, viaLink [][]int, endLayer, routelen int) {
	lastLayer := endLayer
	if viaLink[endLayer][routelen] >= 0 {
		lastLayer = viaLink[endLayer][routelen]
	}
	for k := routelen; k >= 0; k-- {
		steps[k].Layer = lastLayer
		if viaLink[lastLayer][k] >= 0 {
			lastLayer = viaLink[lastLayer][k]
		}
	}
}

// assignZeroLength handles a degenerate edge whose two endpoints coincide
// (routelen == 0): n2 simply inherits n1's envelope when unassigned.
func assignZeroLength(tree *net.StTree, edgeID, n1, n2 int) error {
	n1Node := canon(tree, n1)
	n2Node := canon(tree, n2)
	if !assigned(n1Node) {
		updateEnvelope(n1Node, edgeID, 0)
	}
	if !assigned(n2Node) {
		n2Node.BotL, n2Node.TopL = n1Node.BotL, n1Node.TopL
		n2Node.HID, n2Node.LID = n1Node.HID, n1Node.LID
	}
	if len(tree.Edges[edgeID].Route.Grid) == 1 {
		tree.Edges[edgeID].Route.Grid[0].Layer = n1Node.BotL
	}

	return nil
}

func addCapped(a, b int) int {
	sum := a + b
	if sum < a || sum > bigCost {
		return bigCost
	}

	return sum
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
