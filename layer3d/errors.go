package layer3d

import "errors"

var (
	// ErrEdgeNotRouted is returned when AssignEdge is called on a tree edge
	// whose Route.Grid is empty (NoRoute, LRoute and ZRoute edges carry none).
	ErrEdgeNotRouted = errors.New("layer3d: edge has no 2D route to assign layers to")

	// ErrNoLayerPath is returned when every layer is at capacity along an
	// edge's path, so no feasible layer assignment exists.
	ErrNoLayerPath = errors.New("layer3d: no feasible layer assignment within capacity")

	// ErrBadLayerCount is returned when Config.NumLayers does not match the
	// grid passed to AssignNet.
	ErrBadLayerCount = errors.New("layer3d: configured layer count does not match grid")

	// ErrDiscontiguousRoute is returned by CheckRoute3D when two consecutive
	// grid cells of a route differ by more than one coordinate, or by none.
	ErrDiscontiguousRoute = errors.New("layer3d: route cells are not single-step contiguous")
)
