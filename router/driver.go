// File: driver.go
// Role: the top-level iteration driver — spec §4.4 "Iteration driver",
// §4.5 "Layer assignment & 3D maze", §4.6 "Output", §5 "Concurrency &
// resource model".
package router

import (
	"context"
	"math"

	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/layer3d"
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/net"
)

// maxMonotonicIncreases bounds how many consecutive iterations may see
// total overflow rise before the driver gives up early (spec §4.4 "Hard
// limits: ... at most 25 monotonic increases in total overflow").
const maxMonotonicIncreases = 25

// netOrderInterval enables overflow-descending net ordering every third
// iteration (spec §4.4 "every third iteration enables net ordering").
const netOrderInterval = 3

// Run performs one full global-routing pass: Steiner-tree construction,
// initial 2D pattern routing, the maze rip-up-and-reroute iteration, 3D
// layer assignment, and output assembly (spec §4.6 "run()"). ctx is
// checked between iterations; a canceled context aborts the iteration
// loop early and Run returns ctx.Err() (spec §5 "Cancellation &
// timeouts").
func (r *Router) Run(ctx context.Context) (map[interface{}][]GSegment, error) {
	if r.grid == nil {
		return nil, ErrGridNotConfigured
	}
	if len(r.nets) == 0 {
		return nil, ErrNoNets
	}
	if r.cfg.Builder == nil {
		return nil, ErrNoBuilder
	}

	if err := r.buildInitialTrees(); err != nil {
		return nil, err
	}

	if err := r.iterateMazeRouting(ctx); err != nil {
		return nil, err
	}

	if err := r.assignLayers(); err != nil {
		return nil, err
	}

	updateDbCongestion(r.grid, r.cfg.Sink)

	return r.collectOutput(), nil
}

// buildInitialTrees runs the Steiner tree builder and the initial
// pattern-routing pass for every registered net (spec data flow: "Nets/
// Pins, Capacities -> Grid -> RSMT builder -> 2D pattern routes").
func (r *Router) buildInitialTrees() error {
	for id, n := range r.nets {
		if err := reinitTree(n, r.cfg.Builder, r.cfg.Accuracy); err != nil {
			r.cfg.Logger.Errorf("router: net %d: steiner tree build failed: %v", id, err)

			return err
		}
		routeTreeInitial(r.grid, n.Tree, n.EdgeCost, r.cfg.ViaCost)
	}

	return nil
}

// iterateMazeRouting drives the rip-up-and-reroute loop until total 2D
// overflow reaches zero, the monotonic-increase cap trips, or
// OverflowIterations is exhausted, then restores the best-so-far
// snapshot if the final state regressed (spec §4.4 "Iteration driver").
func (r *Router) iterateMazeRouting(ctx context.Context) error {
	trees := make(map[int]*net.StTree, len(r.nets))
	for id, n := range r.nets {
		trees[id] = n.Tree
	}

	// bestOverflow/backup track the best post-maze-pass state seen so
	// far; the pre-maze state is never a restore candidate, since none of
	// its edges yet carry the MazeRoute grid lists layer assignment
	// requires (spec §4.5 step 1, "Full 3D expansion").
	bestOverflow := -1
	var backup map[int]*net.StTree
	increases := 0
	prevOverflow := r.grid.TotalOverflow2D()

	// maxAdj carries the largest LastUsage grid.UpdateCongestionHistory
	// observed on the previous pass into this pass's LOGIS_COF (spec §4.4
	// "max_adj := max last_usage feeds the next iteration's LOGIS_COF";
	// formula grounded on FastRoute.cpp's
	// "LOGIS_COF = max(2/(1+log(maxOverflow+max_adj)), LOGIS_COF)").
	maxAdj := 0.0

	// Iteration 0 always runs a full pass over every net, regardless of
	// total overflow: needsRipup (maze.Config's newRipupCheck) forces a
	// first route on any edge that has never been through the maze
	// router.
	for iter := 0; iter < r.cfg.OverflowIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		totalOverflow := r.grid.TotalOverflow2D()
		if iter > 0 {
			if totalOverflow == 0 {
				break
			}
			if totalOverflow > prevOverflow {
				increases++
				if increases > maxMonotonicIncreases {
					break
				}
			} else {
				increases = 0
			}
		}
		prevOverflow = totalOverflow

		mazeCfg := scheduleForOverflow(r.cfg.Maze, totalOverflow, iter)
		if maxAdj > 0 {
			if boosted := 2.0 / (1 + math.Log(1+maxAdj)); boosted > mazeCfg.LogisCof {
				mazeCfg.LogisCof = boosted
			}
		}
		htab := maze.BuildCostTable(mazeCfg.CostHeight, mazeCfg.LogisCof, mazeCfg.Slope)
		vtab := htab

		ids := r.netIDsInOrder(iter)
		for _, id := range ids {
			n := r.nets[id]
			if err := r.mazeRouteNet(n, mazeCfg, htab, vtab, iter); err != nil {
				return err
			}
		}

		maxAdj = r.grid.UpdateCongestionHistory(mazeCfg.Decay, mazeCfg.HistoryUpType, mazeCfg.StrAccuRound)

		if postOverflow := r.grid.TotalOverflow2D(); bestOverflow < 0 || postOverflow < bestOverflow {
			bestOverflow = postOverflow
			backup = net.CloneAll(trees)
		}
	}

	if backup != nil && r.grid.TotalOverflow2D() > bestOverflow {
		net.RestoreAll(trees, backup)
	}

	final := r.grid.TotalOverflow2D()
	if final > 0 {
		if r.cfg.AllowOverflow {
			r.cfg.Logger.Warnf("router: converged with residual overflow %d", final)
		} else {
			return ErrCongestionTooHigh
		}
	}

	return nil
}

// netIDsInOrder returns the net ids to process this iteration, ordered by
// accumulated overflow (descending) every netOrderInterval'th iteration
// and by map order otherwise (spec §4.4 "Edge ordering", "every third
// iteration enables net ordering").
func (r *Router) netIDsInOrder(iter int) []int {
	if iter%netOrderInterval != 0 {
		ids := make([]int, 0, len(r.nets))
		for id := range r.nets {
			ids = append(ids, id)
		}

		return ids
	}

	overflow := make(map[int]int, len(r.nets))
	for id, n := range r.nets {
		overflow[id] = netOverflowAt(r.grid, n.Tree)
	}
	ordered := net.NetsByOverflowDesc(overflow)
	ids := make([]int, len(ordered))
	for i, o := range ordered {
		ids[i] = o.NetID
	}

	return ids
}

// mazeRouteNet re-routes every congestion-eligible edge of n's tree, worst
// (longest) edges first (spec §4.4 "Edge ordering", "netedgeOrderDec"),
// rebuilding the tree from scratch if a re-route fails outright or the
// rewired tree fails its integrity check (spec §4.4 "Failure", §7
// "Route-integrity failures").
func (r *Router) mazeRouteNet(n *net.FrNet, cfg maze.Config, htab, vtab maze.CostTable, iter int) error {
	tree := n.Tree
	for _, edgeID := range net.EdgesByLengthDesc(tree) {
		e := &tree.Edges[edgeID]
		if e.Len == 0 {
			continue
		}
		if e.Route.Type == net.LRoute || e.Route.Type == net.ZRoute {
			ripupPatternRoute(r.grid, tree, edgeID, n.EdgeCost)
		}

		_, _, err := maze.RouteEdge(r.grid, tree, edgeID, n.EdgeCost, cfg, htab, vtab, iter)
		if err != nil {
			r.cfg.Logger.Warnf("router: net %v: edge %d re-route failed: %v; rebuilding tree", n.Handle, edgeID, err)

			return r.rebuildNet(n)
		}
	}

	if err := checkRoute2DTree(tree); err != nil {
		r.cfg.Logger.Warnf("router: net %v: route-integrity check failed; rebuilding tree", n.Handle)

		return r.rebuildNet(n)
	}

	return nil
}

// rebuildNet rebuilds n's tree from scratch and re-runs the initial
// pattern-routing pass on it (spec §4.4 "Failure": "the tree is rebuilt
// via a fresh RSMT call (reInitTree) and the pass aborts").
func (r *Router) rebuildNet(n *net.FrNet) error {
	if err := reinitTree(n, r.cfg.Builder, r.cfg.Accuracy); err != nil {
		return err
	}
	routeTreeInitial(r.grid, n.Tree, n.EdgeCost, r.cfg.ViaCost)

	return nil
}

// scheduleForOverflow tunes the maze cost schedule from the current total
// overflow band (spec §4.4 "Each iteration tunes ... according to the
// current total overflow (bands: >15000, >2000, <500)").
func scheduleForOverflow(base maze.Config, totalOverflow, iter int) maze.Config {
	cfg := base
	switch {
	case totalOverflow > 15000:
		cfg.CostHeight = base.CostHeight * 4
		cfg.LogisCof = 1.0
	case totalOverflow > 2000:
		cfg.CostHeight = base.CostHeight * 2
		cfg.LogisCof = 1.5
	case totalOverflow < 500:
		cfg.LogisCof = base.LogisCof * 1.5
		cfg.RipupThreshold = base.RipupThreshold + 1
	}

	return cfg
}

// netOverflowAt sums the 2D overflow of every tile pair a net's tree
// currently routes through, the per-net accumulator StNetOrder ranks
// nets by (spec §4.4 "Edge ordering").
func netOverflowAt(g *grid.Grid, tree *net.StTree) int {
	total := 0
	for i := range tree.Edges {
		steps := tree.Edges[i].Route.Grid
		for k := 0; k+1 < len(steps); k++ {
			a, b := steps[k], steps[k+1]
			if a.Y == b.Y {
				x := a.X
				if b.X < x {
					x = b.X
				}
				total += g.HEdge2D(a.Y, x).Overflow()
			} else {
				y := a.Y
				if b.Y < y {
					y = b.Y
				}
				total += g.VEdge2D(y, a.X).Overflow()
			}
		}
	}

	return total
}

// assignLayers runs 3D layer assignment over every net's converged 2D
// tree (spec §4.5).
func (r *Router) assignLayers() error {
	cfg := layer3d.NewConfig(r.grid.L)
	for id, n := range r.nets {
		layer3d.InitPinLayers(n.Tree)
		if err := layer3d.AssignNet(r.grid, n.Tree, cfg); err != nil {
			r.cfg.Logger.Errorf("router: net %d: layer assignment failed: %v", id, err)

			return err
		}
		layer3d.FillVias(n.Tree)
		if err := layer3d.CheckRoute3D(n.Tree); err != nil {
			return err
		}
	}

	return nil
}

// collectOutput assembles the final net -> 3D segment map (spec §4.6
// "run() returns map<net_handle, vector<GSegment>>").
func (r *Router) collectOutput() map[interface{}][]GSegment {
	out := make(map[interface{}][]GSegment, len(r.nets))
	for _, n := range r.nets {
		out[n.Handle] = collectSegments(n.Tree)
	}

	return out
}
