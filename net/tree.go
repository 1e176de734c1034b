// File: tree.go
// Role: build the StTree arena from a Steiner-tree builder's branch list and
// provide the in-place topology mutations the maze router needs to rewire a
// tree edge after a re-route (spec §4.4 step 7, §9 "arena of nodes with
// indices").
package net

// Branch is one node of a builder-returned Steiner tree: its coordinates and
// the index N of its parent branch (N == its own index marks the root).
// This mirrors the collaborator contract in spec §6
// (makeSteinerTree(xs,ys,s,accuracy) -> Tree{deg,length,branch[]}).
type Branch struct {
	X, Y int
	N    int
}

// BuildTreeFromBranches converts a flat branch list (deg pin branches
// followed by deg-2 Steiner branches) into an StTree arena. len(branches)
// must equal 2*deg-2 for deg >= 2, matching the original's fixed-size
// Steiner topology.
func BuildTreeFromBranches(deg int, branches []Branch) (*StTree, error) {
	if deg < 2 {
		return nil, ErrTooFewPins
	}
	if len(branches) != 2*deg-2 {
		return nil, ErrBadBranchCount
	}

	nodes := make([]TreeNode, len(branches))
	for i, b := range branches {
		nodes[i] = TreeNode{
			X: b.X, Y: b.Y,
			IsPin:      i < deg,
			PinIndex:   i,
			Nbr:        [3]int{-1, -1, -1},
			Edge:       [3]int{-1, -1, -1},
			StackAlias: i,
			BotL:       -1, TopL: -1, HID: -1, LID: -1,
		}
		if i >= deg {
			nodes[i].PinIndex = -1
		}
	}

	edges := make([]TreeEdge, 0, len(branches)-1)
	for i, b := range branches {
		if b.N == i {
			continue // root branch: no parent edge
		}
		eid := len(edges)
		length := manhattan(b.X, b.Y, branches[b.N].X, branches[b.N].Y)
		edges = append(edges, TreeEdge{N1: i, N2: b.N, Len: length})
		if err := nodes[i].addNeighbor(b.N, eid); err != nil {
			return nil, err
		}
		if err := nodes[b.N].addNeighbor(i, eid); err != nil {
			return nil, err
		}
	}

	tree := &StTree{Deg: deg, Nodes: nodes, Edges: edges}
	aliasCoincidentNodes(tree)

	return tree, nil
}

// aliasCoincidentNodes groups nodes sharing an (X,Y) location and points
// every non-canonical member's StackAlias at the lowest-indexed member,
// which becomes the canonical id for that location (spec §3: "Nodes at the
// same (x,y) are aliased via a stackAlias field").
func aliasCoincidentNodes(tree *StTree) {
	first := make(map[[2]int]int, len(tree.Nodes))
	for i, n := range tree.Nodes {
		key := [2]int{n.X, n.Y}
		if canon, ok := first[key]; ok {
			tree.Nodes[i].StackAlias = canon
		} else {
			first[key] = i
			tree.Nodes[i].StackAlias = i
		}
	}
}

func manhattan(x1, y1, x2, y2 int) int {
	return absInt(x1-x2) + absInt(y1-y2)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// SplitEdgeAt implements the first branch of spec §4.4 step 7: n1 is a
// Steiner node at a stale position, and the new maze path's endpoint E
// lies on the edge (n1, other) incident to n1. The edge is split at E:
// n1's position moves to E, and the (n1,other) edge shrinks to cover only
// the new sub-segment; the far sub-segment is absorbed by extending a new
// edge from E to other (same edge id is reused, since exactly one edge
// survives the split on this branch — the node simply slides along it).
func (t *StTree) SplitEdgeAt(n1, edgeID, ex, ey int) error {
	if n1 < 0 || n1 >= len(t.Nodes) {
		return ErrNodeNotFound
	}
	if edgeID < 0 || edgeID >= len(t.Edges) {
		return ErrEdgeNotFound
	}
	e := &t.Edges[edgeID]
	other := e.N1
	if other == n1 {
		other = e.N2
	}
	t.Nodes[n1].X, t.Nodes[n1].Y = ex, ey
	e.Len = manhattan(ex, ey, t.Nodes[other].X, t.Nodes[other].Y)

	return nil
}

// MergeEdges implements the second branch of spec §4.4 step 7: E does not
// lie on an edge already incident to n1, so n1 must be re-parented. The two
// edges previously incident to n1 (edge(n1,a1), edge(n1,a2)) are coalesced
// into a single new edge (a1,a2) that bypasses n1 entirely; n1 is then
// detached from a1/a2 and moved to E, ready for the caller to attach it to
// the split halves of the target edge via two further SplitEdgeAt-style
// AttachEdge calls.
func (t *StTree) MergeEdges(n1, a1, a2, edgeN1A1, edgeN1A2 int) error {
	for _, id := range []int{n1, a1, a2} {
		if id < 0 || id >= len(t.Nodes) {
			return ErrNodeNotFound
		}
	}
	for _, id := range []int{edgeN1A1, edgeN1A2} {
		if id < 0 || id >= len(t.Edges) {
			return ErrEdgeNotFound
		}
	}

	// Reuse edgeN1A1 as the new (a1,a2) bypass edge; retire edgeN1A2's
	// node-side bookkeeping (its slot stays allocated but disconnected,
	// matching the original's habit of never compacting edge arrays
	// mid-route; the maze committer is responsible for not referencing it
	// again).
	bypass := &t.Edges[edgeN1A1]
	bypass.N1, bypass.N2 = a1, a2
	bypass.Len = manhattan(t.Nodes[a1].X, t.Nodes[a1].Y, t.Nodes[a2].X, t.Nodes[a2].Y)

	t.Nodes[n1].removeNeighbor(a1)
	t.Nodes[n1].removeNeighbor(a2)
	t.Nodes[a1].removeNeighbor(n1)
	t.Nodes[a2].removeNeighbor(n1)
	if err := t.Nodes[a1].addNeighbor(a2, edgeN1A1); err != nil {
		return err
	}
	if err := t.Nodes[a2].addNeighbor(a1, edgeN1A1); err != nil {
		return err
	}
	t.Edges[edgeN1A2] = TreeEdge{N1: -1, N2: -1}

	return nil
}

// AttachEdge connects node n1 to node other via tree-edge edgeID, recording
// the adjacency on both ends and the edge's current length. Used after
// MergeEdges to wire the relocated node into the two halves of the edge it
// landed on.
func (t *StTree) AttachEdge(n1, other, edgeID int) error {
	if n1 < 0 || n1 >= len(t.Nodes) || other < 0 || other >= len(t.Nodes) {
		return ErrNodeNotFound
	}
	if edgeID < 0 || edgeID >= len(t.Edges) {
		return ErrEdgeNotFound
	}
	t.Edges[edgeID] = TreeEdge{
		N1:  n1,
		N2:  other,
		Len: manhattan(t.Nodes[n1].X, t.Nodes[n1].Y, t.Nodes[other].X, t.Nodes[other].Y),
	}
	if err := t.Nodes[n1].addNeighbor(other, edgeID); err != nil {
		return err
	}

	return t.Nodes[other].addNeighbor(n1, edgeID)
}

// EdgeID returns the tree-edge id connecting a and b, or -1 if they are not
// directly adjacent.
func (t *StTree) EdgeID(a, b int) int {
	if a < 0 || a >= len(t.Nodes) {
		return -1
	}

	return t.Nodes[a].edgeTo(b)
}

// RelinkEdge repoints tree-edge edgeID's oldEnd endpoint to newEnd,
// recomputing Len and updating both nodes' neighbour lists. Used when a
// relocated node is spliced into an edge it was not previously part of
// (spec §4.4 step 7, second branch: "edges (n1,C1) and (n1,C2) are created
// from the two halves of (C1,C2) split at E1").
func (t *StTree) RelinkEdge(edgeID, oldEnd, newEnd int) error {
	if edgeID < 0 || edgeID >= len(t.Edges) {
		return ErrEdgeNotFound
	}
	if oldEnd < 0 || oldEnd >= len(t.Nodes) || newEnd < 0 || newEnd >= len(t.Nodes) {
		return ErrNodeNotFound
	}

	e := &t.Edges[edgeID]
	var other int
	switch oldEnd {
	case e.N1:
		other = e.N2
		e.N1 = newEnd
	case e.N2:
		other = e.N1
		e.N2 = newEnd
	default:
		return ErrNodeNotFound
	}
	t.Nodes[oldEnd].removeNeighbor(other)
	t.Nodes[other].removeNeighbor(oldEnd)
	e.Len = manhattan(t.Nodes[other].X, t.Nodes[other].Y, t.Nodes[newEnd].X, t.Nodes[newEnd].Y)
	if err := t.Nodes[other].addNeighbor(newEnd, edgeID); err != nil {
		return err
	}

	return t.Nodes[newEnd].addNeighbor(other, edgeID)
}
