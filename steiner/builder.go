// File: builder.go
// Role: the external Steiner-tree builder collaborator — spec §6
// ("makeSteinerTree(xs[], ys[], s[], accuracy) -> Tree") and §4.2.
package steiner

import (
	"container/heap"

	"github.com/katalvlaran/groute/net"
)

// Builder produces a 2D Steiner tree for a net's pins, matching the
// external FLUTE-like collaborator contract of spec §6.
type Builder interface {
	MakeSteinerTree(xs, ys []int, s []int, accuracy int) (*net.StTree, error)
}

// DefaultBuilder implements Builder via incremental cheapest-insertion:
// grown the way Prim's algorithm grows an MST, one frontier candidate at a time off
// a min-heap, except the "frontier" here is the set of tree edges a new pin
// can land on, not unvisited graph vertices.
type DefaultBuilder struct {
	opts Options
}

// New constructs a DefaultBuilder from the given options, DefaultOptions()
// as the baseline.
func New(opts ...Option) *DefaultBuilder {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return &DefaultBuilder{opts: o}
}

// edgeRef is one edge of the tree under construction, tracked by branch
// index while the tree is built incrementally.
type edgeRef struct {
	u, v int
}

// candidate is one (edge, corner) insertion option considered for the pin
// currently being added.
type candidate struct {
	cost   float64
	edge   int
	cx, cy int
}

type candidateHeap []candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}

// MakeSteinerTree builds a Steiner tree for deg := len(xs) pins. s, if
// non-nil and of length deg, gives the order pins are inserted into the
// growing tree (a permutation of 0..deg-1); nil uses input order. accuracy
// is accepted for interface compatibility with the original FLUTE-derived
// contract but does not affect this builder's output.
func (b *DefaultBuilder) MakeSteinerTree(xs, ys []int, s []int, accuracy int) (*net.StTree, error) {
	deg := len(xs)
	if deg != len(ys) {
		return nil, ErrCoordMismatch
	}
	if deg < 2 {
		return nil, ErrTooFewPins
	}
	if accuracy < 0 {
		return nil, ErrBadAccuracy
	}

	order := make([]int, deg)
	if len(s) == deg {
		copy(order, s)
	} else {
		for i := range order {
			order[i] = i
		}
	}

	branches := make([]net.Branch, 2*deg-2)
	for i := 0; i < deg; i++ {
		branches[i] = net.Branch{X: xs[i], Y: ys[i], N: i}
	}

	p0, p1 := order[0], order[1]
	branches[p1].N = p0
	if deg == 2 {
		return net.BuildTreeFromBranches(deg, branches)
	}

	edges := []edgeRef{{p0, p1}}
	nextSteiner := deg

	for k := 2; k < deg; k++ {
		i := order[k]
		best := bestInsertion(branches, edges, xs[i], ys[i], b.opts.CoeffH, b.opts.CoeffV)

		u, v := edges[best.edge].u, edges[best.edge].v
		steiner := nextSteiner
		nextSteiner++

		switch {
		case branches[v].N == u:
			branches[v].N = steiner
			branches[steiner] = net.Branch{X: best.cx, Y: best.cy, N: u}
		case branches[u].N == v:
			branches[u].N = steiner
			branches[steiner] = net.Branch{X: best.cx, Y: best.cy, N: v}
		default:
			branches[steiner] = net.Branch{X: best.cx, Y: best.cy, N: u}
		}
		branches[i].N = steiner

		edges[best.edge] = edgeRef{u, steiner}
		edges = append(edges, edgeRef{steiner, v}, edgeRef{steiner, i})
	}

	return net.BuildTreeFromBranches(deg, branches)
}

// bestInsertion scans every current tree edge and both of its Hanan-corner
// attachment points, returning the one that adds the least scaled
// rectilinear wirelength to connect (px, py).
func bestInsertion(branches []net.Branch, edges []edgeRef, px, py int, coeffH, coeffV float64) candidate {
	pq := &candidateHeap{}
	heap.Init(pq)

	for idx, e := range edges {
		ux, uy := branches[e.u].X, branches[e.u].Y
		vx, vy := branches[e.v].X, branches[e.v].Y
		direct := scaledManhattan(ux, uy, vx, vy, coeffH, coeffV)

		// Corner A: (ux, vy).
		costA := scaledManhattan(ux, uy, ux, vy, coeffH, coeffV) +
			scaledManhattan(ux, vy, vx, vy, coeffH, coeffV) - direct +
			scaledManhattan(ux, vy, px, py, coeffH, coeffV)
		heap.Push(pq, candidate{cost: costA, edge: idx, cx: ux, cy: vy})

		// Corner B: (vx, uy).
		costB := scaledManhattan(ux, uy, vx, uy, coeffH, coeffV) +
			scaledManhattan(vx, uy, vx, vy, coeffH, coeffV) - direct +
			scaledManhattan(vx, uy, px, py, coeffH, coeffV)
		heap.Push(pq, candidate{cost: costB, edge: idx, cx: vx, cy: uy})
	}

	return heap.Pop(pq).(candidate)
}

func scaledManhattan(x1, y1, x2, y2 int, coeffH, coeffV float64) float64 {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}

	return coeffH*float64(dx) + coeffV*float64(dy)
}
