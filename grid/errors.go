package grid

import "errors"

// Sentinel errors for grid package operations (spec §7 "Configuration
// errors" / "Invariant violations").
var (
	// ErrBadExtents indicates SetGridsAndLayers was called with a
	// non-positive X, Y, or L.
	ErrBadExtents = errors.New("grid: grid extents must be positive")

	// ErrLayerOutOfRange indicates a layer index outside [0, L).
	ErrLayerOutOfRange = errors.New("grid: layer index out of range")

	// ErrOutOfBounds indicates a tile coordinate outside [0,X)x[0,Y).
	ErrOutOfBounds = errors.New("grid: tile coordinate out of bounds")

	// ErrNotAnEdge indicates an adjustment targeted two tiles that are not
	// unit-distance apart on a shared axis (spec §4.1 invariant).
	ErrNotAnEdge = errors.New("grid: adjustment endpoints do not form a single grid edge")

	// ErrDifferentLayers indicates an adjustment's two endpoints named
	// different layers.
	ErrDifferentLayers = errors.New("grid: adjustment endpoints must share a layer")
)
