package router_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groute/net"
	"github.com/katalvlaran/groute/router"
	"github.com/katalvlaran/groute/steiner"
)

func newTestRouter(t *testing.T, x, y, l, cap int) *router.Router {
	t.Helper()
	r := router.NewRouter(router.WithSteinerBuilder(steiner.New()))
	require.NoError(t, r.SetGridsAndLayers(x, y, l))
	for layer := 0; layer < l; layer++ {
		require.NoError(t, r.AddHCapacity(layer, cap))
		require.NoError(t, r.AddVCapacity(layer, cap))
	}

	return r
}

func TestRouter_SetGridsAndLayers_RejectsZeroExtents(t *testing.T) {
	r := router.NewRouter()
	err := r.SetGridsAndLayers(0, 5, 2)
	require.Error(t, err)
}

func TestRouter_AddHCapacity_RequiresGrid(t *testing.T) {
	r := router.NewRouter()
	err := r.AddHCapacity(0, 4)
	require.ErrorIs(t, err, router.ErrGridNotConfigured)
}

func TestRouter_AddNet_RejectsPinOutsideGrid(t *testing.T) {
	r := newTestRouter(t, 10, 10, 2, 4)
	_, err := r.AddNet("n1", []net.Pin{{X: 0, Y: 0}, {X: 99, Y: 0}}, 0, 1, 1.0, false, nil)
	require.ErrorIs(t, err, router.ErrBadPin)
}

func TestRouter_AddNet_RejectsOverMaxDegree(t *testing.T) {
	r := router.NewRouter(router.WithMaxNetDegree(2))
	_, err := r.AddNet("n1", []net.Pin{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 0, 1, 1.0, false, nil)
	require.ErrorIs(t, err, router.ErrBadPin)
}

func TestRouter_Run_RequiresGridNetsAndBuilder(t *testing.T) {
	r := router.NewRouter()
	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, router.ErrGridNotConfigured)

	r = newTestRouter(t, 10, 10, 2, 4)
	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, router.ErrNoNets)

	r = router.NewRouter()
	require.NoError(t, r.SetGridsAndLayers(10, 10, 2))
	_, err = r.AddNet("n1", []net.Pin{{X: 0, Y: 0}, {X: 1, Y: 0}}, 0, 1, 1.0, false, nil)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, router.ErrNoBuilder)
}

func TestRouter_Run_TwoPinNetProducesConnectedSegments(t *testing.T) {
	r := newTestRouter(t, 10, 10, 2, 4)
	id, err := r.AddNet("netA", []net.Pin{{X: 0, Y: 0}, {X: 5, Y: 3}}, 0, 1, 1.0, false, nil)
	require.NoError(t, err)
	require.Equal(t, 0, id)

	segs, err := r.Run(context.Background())
	require.NoError(t, err)

	out, ok := segs["netA"]
	require.True(t, ok)
	require.NotEmpty(t, out)

	for _, s := range out {
		dx := absDiff(s.X1, s.X2)
		dy := absDiff(s.Y1, s.Y2)
		dl := absDiff(s.Layer1, s.Layer2)
		require.Equal(t, 1, dx+dy+dl, "segment must be a single-coordinate unit step: %+v", s)
	}
}

func TestRouter_Run_MultiNetWithinCapacityConverges(t *testing.T) {
	r := newTestRouter(t, 8, 8, 2, 2)
	_, err := r.AddNet("n1", []net.Pin{{X: 0, Y: 0}, {X: 7, Y: 0}}, 0, 1, 1.0, false, nil)
	require.NoError(t, err)
	_, err = r.AddNet("n2", []net.Pin{{X: 0, Y: 0}, {X: 7, Y: 0}}, 0, 1, 1.0, false, nil)
	require.NoError(t, err)

	segs, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, segs, 2)
}

func TestRouter_LayerStats_RequiresGrid(t *testing.T) {
	r := router.NewRouter()
	_, err := r.LayerStats()
	require.ErrorIs(t, err, router.ErrGridNotConfigured)
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}

	return a - b
}

