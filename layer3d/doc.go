// Package layer3d implements the 3D layer-assignment stage: once the 2D
// maze router (package maze) has converged, every tree edge holds a 2D grid
// list. This package picks a metal layer for each grid cell of each edge,
// aggregates per-node layer envelopes across coincident (stacked) nodes,
// and fills the vias that bridge them (spec §4.5 "Layer assignment & 3D
// maze").
//
// The per-edge layer pick (AssignEdge) is a dynamic program over
// (layer, grid-index) cells: moving along the 2D path at a fixed layer
// costs 1 if that layer's 3D edge still has capacity, else a prohibitive
// constant; changing layers at a given grid index costs a per-level via
// charge that is cheaper at the very first and very last index of the
// edge (spec: "via cost 2 or 3 per level, 1 at the last step"). The DP
// itself mirrors the level-graph / capacity-gated-transition shape of the
// teacher's max-flow package (github.com/katalvlaran/lvlath's flow.Dinic):
// both walk a layered graph where an edge is only traversable while its
// residual capacity is positive, and both reconstruct the realized path
// from a predecessor table after the forward pass. Here the DP replaces
// Dinic's blocking-flow search because the quantity being optimized is
// total via+usage cost along one fixed-topology path, not a maximum flow
// value — the original FastRoute engine's assignEdge is long-hand dynamic
// programming, not a max-flow reduction, so this package reimplements it
// directly rather than adapting the flow package's augmenting-path logic.
package layer3d
