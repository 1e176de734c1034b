package layer3d

import "github.com/katalvlaran/groute/net"

// FillVias extends every tree edge that defines one of its endpoints'
// layer bounds (edgeID == node.HID or node.LID) with via-only cells at
// that endpoint, bridging the node's [BotL,TopL] envelope so consecutive
// grid cells differ by exactly one coordinate end to end (spec §4.5 step
// 4). Edges that do not define either endpoint's envelope are left alone:
// the via stack they'd need is already supplied by whichever edge does
// define that bound.
func FillVias(tree *net.StTree) {
	for edgeID := range tree.Edges {
		edge := &tree.Edges[edgeID]
		if edge.Len == 0 || len(edge.Route.Grid) == 0 {
			continue
		}
		n1, n2 := edge.N1, edge.N2
		n1Node, n2Node := &tree.Nodes[n1], &tree.Nodes[n2]
		n1Defines := edgeID == n1Node.HID || edgeID == n1Node.LID
		n2Defines := edgeID == n2Node.HID || edgeID == n2Node.LID
		if !n1Defines && !n2Defines {
			continue
		}

		steps := edge.Route.Grid
		out := make([]net.GridStep, 0, len(steps)+absInt(n1Node.TopL-n1Node.BotL)+absInt(n2Node.TopL-n2Node.BotL))

		if n1Defines {
			first := steps[0]
			for l := n1Node.BotL; l < first.Layer; l++ {
				out = append(out, net.GridStep{X: first.X, Y: first.Y, Layer: l})
			}
		}
		out = append(out, steps...)
		if n2Defines {
			last := steps[len(steps)-1]
			for l := last.Layer - 1; l >= n2Node.BotL; l-- {
				out = append(out, net.GridStep{X: last.X, Y: last.Y, Layer: l})
			}
		}

		edge.Route.Grid = out
		edge.Route.Type = net.MazeRoute
	}
}

// ThreeDVia counts the layer transitions across every routed edge of
// tree: the number of consecutive grid-cell pairs whose layer differs
// (spec §4.5 step 5, "threeDVIA").
func ThreeDVia(tree *net.StTree) int {
	count := 0
	for i := range tree.Edges {
		steps := tree.Edges[i].Route.Grid
		for k := 0; k+1 < len(steps); k++ {
			if steps[k].Layer != steps[k+1].Layer {
				count++
			}
		}
	}

	return count
}

// CheckRoute3D verifies that every routed tree edge's consecutive grid
// cells differ by exactly one coordinate (X, Y, or Layer) by exactly one
// unit — no diagonal moves and no layer skips (spec §4.5 step 5,
// "checkRoute3D").
func CheckRoute3D(tree *net.StTree) error {
	for i := range tree.Edges {
		steps := tree.Edges[i].Route.Grid
		for k := 0; k+1 < len(steps); k++ {
			dx := absInt(steps[k].X - steps[k+1].X)
			dy := absInt(steps[k].Y - steps[k+1].Y)
			dl := absInt(steps[k].Layer - steps[k+1].Layer)
			changed := 0
			if dx != 0 {
				changed++
			}
			if dy != 0 {
				changed++
			}
			if dl != 0 {
				changed++
			}
			if changed != 1 || dx > 1 || dy > 1 || dl > 1 {
				return ErrDiscontiguousRoute
			}
		}
	}

	return nil
}

// Wirelength returns length + 3*vias, the final reported wirelength (spec
// §4.5 step 5). Unlike Route.RouteLen, this counts grid-cell spans for
// every route type (L/Z/maze), since by the 3D stage an edge need not have
// been promoted to MazeRoute to carry a valid grid list (FillVias only
// touches edges that define an endpoint's layer envelope).
func Wirelength(tree *net.StTree) int {
	length := 0
	for i := range tree.Edges {
		if n := len(tree.Edges[i].Route.Grid); n > 0 {
			length += n - 1
		}
	}

	return length + 3*ThreeDVia(tree)
}
