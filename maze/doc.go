// Package maze implements the 2D maze router: a bounded-region,
// multi-source/multi-destination Dijkstra search over the congestion grid
// that re-routes one Steiner-tree edge at a time (spec §4.4 "Maze router
// (2D)").
//
// Unlike the pattern routers in package pattern, the maze router is aware
// of the rest of the net's tree: of the two subtrees a tree edge's removal
// would split the net into (package net's SubtreeCells), it seeds its
// search frontier from every cell of the source subtree, searches outward
// until it reaches any cell of the destination subtree, and — on finding
// a path — may relocate either
// subtree's attachment point, rewiring the tree topology via
// net.StTree.SplitEdgeAt/MergeEdges/RelinkEdge/AttachEdge.
//
// The search itself is a single multi-seed Dijkstra that terminates the
// moment it finalizes any destination-side seed cell, rather than running
// two independent heaps to a rendezvous point; by the standard
// correctness argument for Dijkstra with non-negative edge weights, the
// path reconstructed this way is the true shortest source-to-destination
// path, so the two formulations agree (see DESIGN.md).
//
// Edge cost is precomputed into a CostTable indexed by integer usage, the
// logistic congestion-history cost function of spec §4.4 ("Cost
// function"):
//
//	cost(u) = costHeight/(exp((cap-u)*LOGIS_COF)+1) + 1
//	          + (u>=cap ? costHeight/slope*(u-cap) : 0)
package maze
