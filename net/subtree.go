// File: subtree.go
// Role: walk a Steiner tree's adjacency graph to find the set of grid cells
// belonging to one side of a cut edge — the "source subtree" / "destination
// subtree" seeding step of the maze router (spec §4.4 step 4). A tree with
// one edge removed splits into exactly two components; this is a plain
// breadth-first traversal of that component, grounded on the teacher's
// algorithms.BFS (queue + visited-set, deterministic neighbour order).
package net

// SubtreeCells returns every grid cell belonging to the component of t's
// adjacency graph reachable from `from` without crossing the tree edge
// cutEdge (the edge currently being re-routed). Each tree edge already
// routed (Route.Type == MazeRoute) contributes its full grid list; an
// unrouted edge contributes just its two endpoints, so a first-ever route
// of a brand-new tree still seeds correctly.
//
// Complexity: O(nodes + total grid length) — a single BFS over the tree.
func SubtreeCells(t *StTree, from, cutEdge int) []GridStep {
	visitedNode := make(map[int]bool, len(t.Nodes))
	var cells []GridStep
	queue := []int{from}
	visitedNode[from] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		node := &t.Nodes[cur]
		cells = append(cells, GridStep{X: node.X, Y: node.Y, Layer: 0})

		for i := 0; i < node.NbrCount; i++ {
			nbr := node.Nbr[i]
			eid := node.Edge[i]
			if eid == cutEdge || visitedNode[nbr] {
				continue
			}
			visitedNode[nbr] = true
			queue = append(queue, nbr)

			e := &t.Edges[eid]
			if e.Route.Type == MazeRoute && len(e.Route.Grid) > 0 {
				cells = append(cells, e.Route.Grid...)
			}
		}
	}

	return cells
}
