package router

import "errors"

var (
	// ErrGridNotConfigured is returned by Run when SetGridsAndLayers has
	// not been called.
	ErrGridNotConfigured = errors.New("router: grid dimensions not set")

	// ErrNoNets is returned by Run when no net has been registered.
	ErrNoNets = errors.New("router: no nets registered")

	// ErrBadPin is a configuration error: a pin lies outside the grid.
	ErrBadPin = errors.New("router: pin outside grid bounds")

	// ErrBadAdjustment is a configuration error: an addAdjustment call did
	// not target a single axis-aligned edge.
	ErrBadAdjustment = errors.New("router: adjustment edge is not axis-aligned")

	// ErrNoBuilder is returned by Run when no SteinerTreeBuilder collaborator
	// was configured.
	ErrNoBuilder = errors.New("router: no steiner tree builder configured")

	// ErrTreeBuildFailed wraps a Steiner tree builder failure for a net.
	ErrTreeBuildFailed = errors.New("router: steiner tree construction failed")

	// ErrRouteIntegrity is checkRoute2DTree's result for a broken maze
	// route (spec §7 "route-integrity failures"). mazeRouteNet answers it
	// by rebuilding the net's tree, so Run does not return it; a failed 3D
	// check surfaces from Run as layer3d.ErrDiscontiguousRoute.
	ErrRouteIntegrity = errors.New("router: route-integrity check failed after tree rebuild")

	// ErrCongestionTooHigh is the fatal "routing congestion too high" error
	// of spec §7, raised when AllowOverflow is false and total overflow is
	// still positive after the iteration cap.
	ErrCongestionTooHigh = errors.New("router: routing congestion too high")
)
