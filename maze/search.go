// File: search.go
// Role: the bounded-region, multi-source/multi-destination Dijkstra search
// — spec §4.4 step 5 ("Dijkstra"), using the teacher's lazy-decrease-key
// heap idiom (push a fresh entry on every relaxation; skip stale pops via
// a visited set) generalized from a single source to a seed set on each
// side.
package maze

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/groute/grid"
)

// cellKey identifies a grid tile for the search's visited/dist/prev maps.
type cellKey struct{ X, Y int }

// searchItem is one entry in the search frontier heap.
type searchItem struct {
	x, y int
	dist float64
}

// searchPQ is a min-heap of searchItem ordered by dist ascending, using the
// same lazy-decrease-key discipline as the teacher's nodePQ: a cheaper
// distance to an already-queued cell is pushed as a new entry rather than
// mutating the old one, and stale entries are discarded on pop via the
// visited set.
type searchPQ []searchItem

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq searchPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(searchItem)) }
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// multiSourceDijkstra searches outward from every cell in sources,
// confined to region, until it finalizes a cell in destinations, then
// returns the reconstructed path from whichever source cell turned out
// nearest to whichever destination cell it reached.
//
// Running one unified multi-seed search to first-destination-pop, rather
// than two independent source-side/destination-side heaps meeting in the
// middle, yields the same shortest path by the standard Dijkstra
// correctness argument (non-negative edge weights): the first destination
// cell popped from a single consistent heap has, by definition, the
// smallest distance from the combined source set of any destination cell,
// and the heap's prev chain traces back to whichever source cell achieves
// that minimum. See DESIGN.md for the two-heap tradeoff this simplifies.
func multiSourceDijkstra(g *grid.Grid, region Region, sources, destinations []gridPoint, htab, vtab CostTable, l int) ([]gridPoint, error) {
	if len(sources) == 0 || len(destinations) == 0 {
		return nil, ErrEmptySeed
	}

	destSet := make(map[cellKey]bool, len(destinations))
	for _, d := range destinations {
		destSet[cellKey{d.X, d.Y}] = true
	}

	dist := make(map[cellKey]float64)
	prev := make(map[cellKey]cellKey)
	hasPrev := make(map[cellKey]bool)
	visited := make(map[cellKey]bool)

	var pq searchPQ
	for _, s := range sources {
		k := cellKey{s.X, s.Y}
		if existing, ok := dist[k]; ok && existing <= 0 {
			continue
		}
		dist[k] = 0
		heap.Push(&pq, searchItem{x: s.X, y: s.Y, dist: 0})
	}

	var goal cellKey
	found := false

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(searchItem)
		k := cellKey{item.x, item.y}
		if visited[k] {
			continue
		}
		visited[k] = true

		if destSet[k] {
			goal = k
			found = true

			break
		}

		for _, nb := range neighbors4(item.x, item.y, region) {
			nk := cellKey{nb.X, nb.Y}
			if visited[nk] {
				continue
			}
			w := edgeCostBetween(g, item.x, item.y, nb.X, nb.Y, htab, vtab, l)
			nd := dist[k] + w
			if cur, ok := dist[nk]; ok && nd >= cur {
				continue
			}
			dist[nk] = nd
			prev[nk] = k
			hasPrev[nk] = true
			heap.Push(&pq, searchItem{x: nb.X, y: nb.Y, dist: nd})
		}
	}

	if !found {
		return nil, ErrNoPath
	}

	path := []gridPoint{{X: goal.X, Y: goal.Y}}
	cur := goal
	for hasPrev[cur] {
		cur = prev[cur]
		path = append(path, gridPoint{X: cur.X, Y: cur.Y})
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

// neighbors4 returns (x,y)'s up-to-4 axis-aligned neighbours that lie
// within region.
func neighbors4(x, y int, region Region) []gridPoint {
	cand := [4]gridPoint{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
	out := make([]gridPoint, 0, 4)
	for _, c := range cand {
		if region.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}

	return out
}

// edgeCostBetween looks up the 2D projection edge joining two
// axis-adjacent cells and prices it through the appropriate cost table,
// keyed on usage+red+L*last_usage (spec §4.4 "Cost tables").
func edgeCostBetween(g *grid.Grid, x1, y1, x2, y2 int, htab, vtab CostTable, l int) float64 {
	if y1 == y2 {
		x := x1
		if x2 < x1 {
			x = x2
		}
		e := g.HEdge2D(y1, x)

		return htab.Cost(historyKey(e, l), e.Cap)
	}
	y := y1
	if y2 < y1 {
		y = y2
	}
	e := g.VEdge2D(y, x1)

	return vtab.Cost(historyKey(e, l), e.Cap)
}

// historyKey folds an edge's congestion-history term into its cost-table
// lookup key when l is non-zero (spec §4.4 "usage + red + L · last_usage").
func historyKey(e *grid.Edge2D, l int) int {
	u := e.Usage + e.Red
	if l != 0 {
		u += int(math.Round(e.LastUsage))
	}

	return u
}
