// Package net defines the per-net data model of the global router: pins,
// the FrNet handle, the Steiner-tree node/edge arena (StTree), and the
// tagged Route variant that a tree edge's geometry goes through as it is
// promoted from an unrouted stub to a 2D or 3D maze route.
//
// A net owns its pins and, once the steiner package has built its initial
// topology, its StTree: the tree is mutated in place for the lifetime of the
// route call, never replaced wholesale except by the router package's
// tree-rebuild-on-failure logic after a failed re-route (spec §4.4
// "Failure").
//
// Degree d = len(pins) determines arena size: a Steiner tree has 2d-2 nodes
// (d pin nodes, d-2 Steiner nodes) and 2d-3 edges. Nodes at the same (x,y)
// are aliased via StackAlias; the alias is the canonical node id for that
// grid location during layer assignment.
//
// Complexity notes: arena operations (SplitEdgeAt, MergeEdges) are O(1) —
// they touch only the handful of nodes adjacent to the split or merge
// point, never walk the whole tree.
package net

import "errors"

// Sentinel errors for net package operations.
var (
	// ErrEmptyPins indicates a net was constructed with zero pins.
	ErrEmptyPins = errors.New("net: net has no pins")

	// ErrTooFewPins indicates fewer than 2 pins were supplied where a
	// 2-pin (or larger) net is required.
	ErrTooFewPins = errors.New("net: net requires at least 2 pins")

	// ErrDriverOutOfRange indicates the driver pin index is outside [0, numPins).
	ErrDriverOutOfRange = errors.New("net: driver pin index out of range")

	// ErrBadBranchCount indicates a Steiner tree builder returned a branch
	// count inconsistent with 2*deg-2.
	ErrBadBranchCount = errors.New("net: steiner tree has wrong branch count")

	// ErrNodeNotFound indicates a tree-arena operation referenced a node id
	// outside the arena's bounds.
	ErrNodeNotFound = errors.New("net: tree node not found")

	// ErrEdgeNotFound indicates a tree-arena operation referenced an edge id
	// outside the arena's bounds.
	ErrEdgeNotFound = errors.New("net: tree edge not found")

	// ErrTooManyNeighbors indicates a node would exceed the fixed 3-neighbor
	// limit that the Steiner tree topology relies on.
	ErrTooManyNeighbors = errors.New("net: tree node cannot exceed 3 neighbors")

	// ErrNotOnEdge names a split point that does not lie on the target
	// edge's current geometry. SplitEdgeAt does not check the point and
	// does not return this error.
	ErrNotOnEdge = errors.New("net: split point does not lie on edge")
)
