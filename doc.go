// Package groute is a VLSI global-routing engine: given a coarse grid of
// routing tiles stacked across several metal layers and a set of nets
// (pin groups), it produces, per net, a 3D rectilinear path connecting
// every pin while minimising wirelength and via count and respecting
// per-edge track capacity as far as possible.
//
// The engine is organized as a pipeline of subpackages, one per pipeline
// stage:
//
//	net/      — FrNet, Pin, and the Steiner-tree arena (StTree/TreeNode/
//	            TreeEdge) every other package operates on
//	grid/     — the 2D/3D congestion grid: capacity, usage, and the
//	            history-tracking fields the maze router's cost function reads
//	steiner/  — Rectilinear Steiner Minimum Tree construction
//	pattern/  — L-route, Z-route, and monotonic pattern routers
//	maze/     — bounded-region multi-source Dijkstra maze routing, driven
//	            by a congestion-history cost function
//	layer3d/  — per-edge layer assignment and via insertion, turning a
//	            converged 2D tree into a layer-resolved 3D path
//	router/   — the top-level Router facade and iteration driver that
//	            wires the above into one Run call
//
// A typical caller constructs a router.Router, configures its grid and
// nets, and calls Run to get back a map of net handle to 3D segments:
//
//	r := router.NewRouter(router.WithSteinerBuilder(steiner.New()))
//	r.SetGridsAndLayers(x, y, layers)
//	r.AddHCapacity(layer, cap)
//	r.AddNet(handle, pins, driverIdx, edgeCost, alpha, isClock, nil)
//	segments, err := r.Run(ctx)
//
// See router's package doc for the full configuration surface and
// iteration-driver contract.
package groute
