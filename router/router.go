// File: router.go
// Role: Router construction and configuration surface — spec §6
// "Configuration" (setGridsAndLayers, addVCapacity/addHCapacity,
// setLowerLeft/setTileSize/setLayerOrientation, addNet/addPin,
// addAdjustment, setOverflowIterations/setAllowOverflow/setVerbose/
// setMaxNetDegree).
package router

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// Router owns the grid and the per-net trees for one global-routing run.
// Configuration methods mutate it in place; Run performs the actual
// routing and is the only method that uses the Steiner builder and the
// congestion sink (AddAdjustment also writes warnings to the Logger).
type Router struct {
	cfg  Config
	grid *grid.Grid

	nets      map[int]*net.FrNet
	nextNetID int
}

// NewRouter constructs a Router from the given options. The grid is not
// allocated until SetGridsAndLayers is called.
func NewRouter(opts ...Option) *Router {
	return &Router{
		cfg:  NewConfig(opts...),
		nets: make(map[int]*net.FrNet),
	}
}

// warnAdapter bridges Config.Logger to grid.Warner, so AddAdjustment's
// underflow warnings (spec §7 "Transient underflows") reach the same sink
// as every other router log line.
type warnAdapter struct{ l Logger }

func (w warnAdapter) Warn(code, msg string, args ...interface{}) {
	w.l.Warnf("["+code+"] "+msg, args...)
}

// SetGridsAndLayers fixes the grid extents (spec §6 "setGridsAndLayers").
// It must be called before AddHCapacity/AddVCapacity/AddAdjustment/AddNet.
func (r *Router) SetGridsAndLayers(x, y, l int) error {
	g, err := grid.NewGrid(x, y, l)
	if err != nil {
		return err
	}
	r.grid = g

	return nil
}

// AddHCapacity sets the per-tile horizontal track capacity of layer.
func (r *Router) AddHCapacity(layer, cap int) error {
	if r.grid == nil {
		return ErrGridNotConfigured
	}

	return r.grid.AddHCapacity(layer, cap)
}

// AddVCapacity sets the per-tile vertical track capacity of layer.
func (r *Router) AddVCapacity(layer, cap int) error {
	if r.grid == nil {
		return ErrGridNotConfigured
	}

	return r.grid.AddVCapacity(layer, cap)
}

// SetLowerLeft sets the metric-space origin of tile (0,0).
func (r *Router) SetLowerLeft(x0, y0 int) error {
	if r.grid == nil {
		return ErrGridNotConfigured
	}
	r.grid.SetLowerLeft(x0, y0)

	return nil
}

// SetTileSize sets the metric-space tile width/height.
func (r *Router) SetTileSize(w, h int) error {
	if r.grid == nil {
		return ErrGridNotConfigured
	}
	r.grid.SetTileSize(w, h)

	return nil
}

// SetLayerOrientation fixes layer's preferred routing direction.
func (r *Router) SetLayerOrientation(layer int, dir grid.Orientation) error {
	if r.grid == nil {
		return ErrGridNotConfigured
	}

	return r.grid.SetLayerOrientation(layer, dir)
}

// AddAdjustment edits the capacity of one 3D edge (spec §4.1, §6
// "addAdjustment"); x1,y1,l1,x2,y2,l2 must name a single axis-aligned
// unit step.
func (r *Router) AddAdjustment(x1, y1, l1, x2, y2, l2, newCap int, isReduce bool) error {
	if r.grid == nil {
		return ErrGridNotConfigured
	}

	return r.grid.AddAdjustment(x1, y1, l1, x2, y2, l2, newCap, isReduce, warnAdapter{r.cfg.Logger})
}

// AddNet registers a new net and returns its id (spec §6 "addNet"). pins
// must be non-empty and driverIdx must index into pins; edgeCostPerLayer
// may be nil.
func (r *Router) AddNet(handle interface{}, pins []net.Pin, driverIdx, edgeCost int, alpha float64, isClock bool, edgeCostPerLayer []int) (int, error) {
	if r.cfg.MaxNetDegree > 0 && len(pins) > r.cfg.MaxNetDegree {
		return 0, ErrBadPin
	}
	if r.grid != nil {
		for _, p := range pins {
			if !r.grid.InBoundsXY(p.X, p.Y) || p.Layer < 0 || p.Layer >= r.grid.L {
				return 0, ErrBadPin
			}
		}
	}

	n, err := net.NewNet(handle, pins, driverIdx, edgeCost)
	if err != nil {
		return 0, err
	}
	n.Alpha = alpha
	n.IsClock = isClock
	n.EdgeCostPerLayer = edgeCostPerLayer

	id := r.nextNetID
	r.nextNetID++
	r.nets[id] = n

	return id, nil
}

// LayerStats reports per-layer capacity/usage/overflow snapshots.
func (r *Router) LayerStats() ([]grid.LayerStat, error) {
	if r.grid == nil {
		return nil, ErrGridNotConfigured
	}

	return r.grid.LayerStats(), nil
}
