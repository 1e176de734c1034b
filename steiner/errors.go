package steiner

import "errors"

// Sentinel errors for Steiner-tree construction (spec §7 "Configuration
// errors").
var (
	// ErrTooFewPins indicates fewer than two pins were supplied; a tree
	// needs at least two terminals.
	ErrTooFewPins = errors.New("steiner: net needs at least two pins")

	// ErrCoordMismatch indicates len(xs) != len(ys).
	ErrCoordMismatch = errors.New("steiner: xs and ys length mismatch")

	// ErrBadAccuracy indicates a negative accuracy parameter was passed to
	// MakeSteinerTree.
	ErrBadAccuracy = errors.New("steiner: accuracy must be non-negative")
)
