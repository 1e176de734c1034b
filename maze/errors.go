package maze

import "errors"

// Sentinel errors for maze package operations (spec §7 "Routing
// failures"/"Invariant violations").
var (
	// ErrNoPath indicates the bounded-region search exhausted its frontier
	// without reaching any destination-subtree cell.
	ErrNoPath = errors.New("maze: no path found within search region")

	// ErrEmptySeed indicates a tree edge's source or destination subtree
	// contributed zero cells to seed the search, which cannot happen for a
	// well-formed tree and signals a caller bug.
	ErrEmptySeed = errors.New("maze: source or destination subtree is empty")

	// ErrBadEdge indicates RouteEdge was asked to route an edge id outside
	// the tree's edge arena.
	ErrBadEdge = errors.New("maze: edge id out of range")
)
