// File: rewire.go
// Role: splice a newly found maze path's endpoints back into the tree
// topology — spec §4.4 step 7 ("Tree rewiring").
package maze

import "github.com/katalvlaran/groute/net"

// rewireEndpoint moves Steiner node n onto (ex,ey), the position the maze
// search actually attached to on n's side of activeEdge. Pins never move
// (IsPin is authoritative); a Steiner node that already sits at (ex,ey) is
// left untouched.
//
// Two branches, per spec §4.4 step 7:
//
//   - n has at most one other incident edge: sliding it along that edge
//     (or simply repositioning a degree-1 node) cannot disconnect anything,
//     so SplitEdgeAt suffices.
//   - n has two other incident edges (A1, A2): if (ex,ey) is not already on
//     one of those two edges, n is re-parented — (n,A1) and (n,A2) coalesce
//     into a direct (A1,A2) edge bypassing n, and n is spliced into
//     whichever existing tree edge's recorded maze geometry already passes
//     through (ex,ey), splitting that edge into two halves around n.
func rewireEndpoint(tree *net.StTree, n, activeEdge, ex, ey int) error {
	node := &tree.Nodes[n]
	if node.IsPin || (node.X == ex && node.Y == ey) {
		return nil
	}

	var others []int
	for k := 0; k < node.NbrCount; k++ {
		if node.Edge[k] != activeEdge {
			others = append(others, k)
		}
	}

	switch len(others) {
	case 0:
		node.X, node.Y = ex, ey

		return nil
	case 1:
		edgeID := node.Edge[others[0]]
		if err := tree.SplitEdgeAt(n, edgeID, ex, ey); err != nil {
			return err
		}
		// The slid edge's old Grid no longer matches its new endpoint; the
		// next rip-up-and-reroute pass must regenerate it.
		tree.Edges[edgeID].Route = net.Route{}

		return nil
	default:
		a1, e1 := node.Nbr[others[0]], node.Edge[others[0]]
		a2, e2 := node.Nbr[others[1]], node.Edge[others[1]]

		if onEdge(tree, e1, ex, ey) {
			edgeID := e1
			if err := tree.SplitEdgeAt(n, edgeID, ex, ey); err != nil {
				return err
			}
			tree.Edges[edgeID].Route = net.Route{}

			return nil
		}
		if onEdge(tree, e2, ex, ey) {
			edgeID := e2
			if err := tree.SplitEdgeAt(n, edgeID, ex, ey); err != nil {
				return err
			}
			tree.Edges[edgeID].Route = net.Route{}

			return nil
		}

		target := findEdgeContaining(tree, ex, ey, activeEdge, e1, e2)
		if target < 0 {
			// No tree edge's recorded geometry passes through (ex,ey) yet
			// (it is a brand-new location, e.g. a first-ever maze route on
			// a fresh tree); slide along e1, the first of n's own other
			// edges, rather than leaving the tree disconnected.
			if err := tree.SplitEdgeAt(n, e1, ex, ey); err != nil {
				return err
			}
			tree.Edges[e1].Route = net.Route{}

			return nil
		}

		if err := tree.MergeEdges(n, a1, a2, e1, e2); err != nil {
			return err
		}
		node.X, node.Y = ex, ey
		tree.Edges[e1].Route = net.Route{} // now the (a1,a2) bypass; stale geometry
		c2 := tree.Edges[target].N2
		if err := tree.RelinkEdge(target, c2, n); err != nil {
			return err
		}
		tree.Edges[target].Route = net.Route{}

		if err := tree.AttachEdge(n, c2, e2); err != nil {
			return err
		}
		tree.Edges[e2].Route = net.Route{}

		return nil
	}
}

// onEdge reports whether (ex,ey) already equals one of edgeID's endpoint
// coordinates or appears in its recorded maze-route geometry.
func onEdge(tree *net.StTree, edgeID, ex, ey int) bool {
	e := &tree.Edges[edgeID]
	if (tree.Nodes[e.N1].X == ex && tree.Nodes[e.N1].Y == ey) ||
		(tree.Nodes[e.N2].X == ex && tree.Nodes[e.N2].Y == ey) {
		return true
	}
	for _, step := range e.Route.Grid {
		if step.X == ex && step.Y == ey {
			return true
		}
	}

	return false
}

// findEdgeContaining searches every tree edge except those in exclude for
// one whose recorded maze-route geometry passes through (ex,ey), returning
// its id or -1.
func findEdgeContaining(tree *net.StTree, ex, ey int, exclude ...int) int {
	skip := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	for id := range tree.Edges {
		if skip[id] {
			continue
		}
		e := &tree.Edges[id]
		if e.N1 < 0 {
			continue // retired slot
		}
		for _, step := range e.Route.Grid {
			if step.X == ex && step.Y == ey {
				return id
			}
		}
	}

	return -1
}
