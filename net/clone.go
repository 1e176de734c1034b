// File: clone.go
// Role: deep-copy an StTree for the iteration driver's best-so-far backup
// (spec §3 "sttreesBK", §5 "Tree snapshots are taken atomically between maze
// passes"). Grounded on the teacher's Graph.Clone/CloneEmpty pair: a cheap
// structural copy plus a full deep copy, carrying over every mutable field
// so the restored tree is bit-identical to the snapshot (testable property
// 8, "Snapshot round-trip").
package net

// CloneTree returns a deep copy of t: Nodes and Edges are copied element by
// element (including the fixed-size Nbr/Edge arrays and the Route's Grid
// slice), so mutating the clone never touches t.
//
// Complexity: O(nodes + edges + total grid length).
func CloneTree(t *StTree) *StTree {
	if t == nil {
		return nil
	}
	nodes := make([]TreeNode, len(t.Nodes))
	copy(nodes, t.Nodes)

	edges := make([]TreeEdge, len(t.Edges))
	for i, e := range t.Edges {
		edges[i] = e
		if len(e.Route.Grid) > 0 {
			edges[i].Route.Grid = make([]GridStep, len(e.Route.Grid))
			copy(edges[i].Route.Grid, e.Route.Grid)
		}
	}

	return &StTree{Deg: t.Deg, Nodes: nodes, Edges: edges}
}

// RestoreTree overwrites dst in place with a deep copy of src's contents,
// reusing dst's backing arrays when their lengths already match (the usual
// case: tree topology does not change in size across a restore, only
// geometry). Used by the iteration driver when the best-so-far backup beats
// the final state (spec §4.4 "Iteration driver").
func RestoreTree(dst, src *StTree) {
	if src == nil || dst == nil {
		return
	}
	dst.Deg = src.Deg
	if len(dst.Nodes) != len(src.Nodes) {
		dst.Nodes = make([]TreeNode, len(src.Nodes))
	}
	copy(dst.Nodes, src.Nodes)

	if len(dst.Edges) != len(src.Edges) {
		dst.Edges = make([]TreeEdge, len(src.Edges))
	}
	for i, e := range src.Edges {
		dst.Edges[i] = e
		if len(e.Route.Grid) > 0 {
			g := make([]GridStep, len(e.Route.Grid))
			copy(g, e.Route.Grid)
			dst.Edges[i].Route.Grid = g
		} else {
			dst.Edges[i].Route.Grid = nil
		}
	}
}

// CloneAll deep-copies every tree in trees, preserving net identity via the
// same map keys. Used to build the driver's sttreesBK snapshot over every
// net in one pass.
func CloneAll(trees map[int]*StTree) map[int]*StTree {
	out := make(map[int]*StTree, len(trees))
	for id, t := range trees {
		out[id] = CloneTree(t)
	}

	return out
}

// RestoreAll restores every tree in dst from its counterpart in backup,
// skipping ids absent from backup (should not happen under correct driver
// use, but tolerated defensively rather than panicking mid-restore).
func RestoreAll(dst, backup map[int]*StTree) {
	for id, t := range dst {
		if b, ok := backup[id]; ok {
			RestoreTree(t, b)
		}
	}
}
