// File: stats.go
// Role: overflow scanning and per-layer capacity/usage/overflow reporting —
// spec §4.1 "overflow accounting" and §6 (getTotalCapacityPerLayer,
// getTotalUsagePerLayer, getTotalOverflowPerLayer, getMaxHorizontalOverflows,
// getMaxVerticalOverflows).
package grid

// LayerStat summarizes one layer's aggregate capacity, usage, and overflow
// (SPEC_FULL.md "Supplemented features": Router.LayerStats()).
type LayerStat struct {
	Layer      int
	Capacity   int
	Usage      int
	Overflow   int
	MinWidth   int
	MinSpacing int
	ViaSpacing int
}

// LayerStats returns one LayerStat per layer, aggregating every 3D edge
// (both orientations) the layer owns.
func (g *Grid) LayerStats() []LayerStat {
	out := make([]LayerStat, g.L)
	for layer := 0; layer < g.L; layer++ {
		out[layer] = LayerStat{
			Layer:      layer,
			MinWidth:   g.layers[layer].minWidth,
			MinSpacing: g.layers[layer].minSpacing,
			ViaSpacing: g.layers[layer].viaSpacing,
		}
		for y := 0; y < g.Y; y++ {
			for x := 0; x < g.X-1; x++ {
				e := &g.h3D[layer][y][x]
				out[layer].Capacity += e.Cap
				out[layer].Usage += e.Usage
				out[layer].Overflow += e.Overflow()
			}
		}
		for y := 0; y < g.Y-1; y++ {
			for x := 0; x < g.X; x++ {
				e := &g.v3D[layer][y][x]
				out[layer].Capacity += e.Cap
				out[layer].Usage += e.Usage
				out[layer].Overflow += e.Overflow()
			}
		}
	}

	return out
}

// TotalCapacityPerLayer and TotalUsagePerLayer return raw per-layer sums
// without the rest of LayerStat, mirroring FastRoute's
// getTotalCapacityPerLayer/getTotalUsagePerLayer.
func (g *Grid) TotalCapacityPerLayer() []int {
	stats := g.LayerStats()
	out := make([]int, len(stats))
	for i, s := range stats {
		out[i] = s.Capacity
	}

	return out
}

func (g *Grid) TotalUsagePerLayer() []int {
	stats := g.LayerStats()
	out := make([]int, len(stats))
	for i, s := range stats {
		out[i] = s.Usage
	}

	return out
}

func (g *Grid) TotalOverflowPerLayer() []int {
	stats := g.LayerStats()
	out := make([]int, len(stats))
	for i, s := range stats {
		out[i] = s.Overflow
	}

	return out
}

// MaxHorizontalOverflow and MaxVerticalOverflow scan the 2D projections and
// return the single largest per-edge overflow for each orientation
// (getMaxHorizontalOverflows/getMaxVerticalOverflows in FastRoute.h).
func (g *Grid) MaxHorizontalOverflow() int {
	max := 0
	for y := range g.h2D {
		for x := range g.h2D[y] {
			if of := g.h2D[y][x].Overflow(); of > max {
				max = of
			}
		}
	}

	return max
}

func (g *Grid) MaxVerticalOverflow() int {
	max := 0
	for y := range g.v2D {
		for x := range g.v2D[y] {
			if of := g.v2D[y][x].Overflow(); of > max {
				max = of
			}
		}
	}

	return max
}

// TotalOverflow2D sums overflow across both 2D projections, the quantity the
// rip-up-and-reroute loop halts on once it reaches zero (spec §4.4).
func (g *Grid) TotalOverflow2D() int {
	total := 0
	for y := range g.h2D {
		for x := range g.h2D[y] {
			total += g.h2D[y][x].Overflow()
		}
	}
	for y := range g.v2D {
		for x := range g.v2D[y] {
			total += g.v2D[y][x].Overflow()
		}
	}

	return total
}

// HistoryDecayFactor is the multiplicative decay UpdateCongestionHistory
// applies to a non-overflowing edge's LastUsage (spec §4.4 "History / cost
// evolution": "last_usage *= 0.9").
const HistoryDecayFactor = 0.9

// UpType selects how UpdateCongestionHistory adjusts CongCNT on an edge
// that is not currently overflowing (spec §4.4 "under up_type=1 ... =2
// ... =3").
type UpType int

const (
	// UpTypeHold leaves CongCNT unchanged on a non-overflowing edge.
	UpTypeHold UpType = 1
	// UpTypeDecay decrements CongCNT by 1, floored at 0.
	UpTypeDecay UpType = 2
	// UpTypeHarsh additionally lets LastUsage absorb the edge's (negative)
	// usage-capacity slack, clamped at 0, on top of the multiplicative
	// decay — "a harsher variant".
	UpTypeHarsh UpType = 3
)

// UpdateCongestionHistory adjusts every 2D edge's LastUsage/CongCNT after a
// maze pass (spec §4.4 "History / cost evolution"):
//
//   - An edge currently overflowing gets LastUsage += overflow and
//     CongCNT++.
//   - An edge not overflowing, when decay is enabled, gets
//     LastUsage *= HistoryDecayFactor; CongCNT is held (UpTypeHold),
//     decremented and floored at 0 (UpTypeDecay), or, under UpTypeHarsh,
//     LastUsage additionally absorbs the edge's negative usage-capacity
//     slack, clamped at 0.
//   - A persistent offender (CongCNT > rnd) gets a str_accu boost of
//     CongCNT*overflow/2 added to LastUsage.
//
// Returns max_adj, the largest LastUsage value observed, which the
// iteration driver may feed into the next pass's LOGIS_COF schedule.
func (g *Grid) UpdateCongestionHistory(decay bool, upType UpType, rnd int) float64 {
	maxAdj := 0.0
	apply := func(e *Edge2D) {
		slack := e.Usage - e.Cap
		if slack > 0 {
			e.LastUsage += float64(slack)
			e.CongCNT++
		} else if decay {
			e.LastUsage *= HistoryDecayFactor
			switch upType {
			case UpTypeDecay:
				if e.CongCNT > 0 {
					e.CongCNT--
				}
			case UpTypeHarsh:
				e.LastUsage += float64(slack)
				if e.LastUsage < 0 {
					e.LastUsage = 0
				}
			}
		}
		if e.CongCNT > rnd {
			e.LastUsage += float64(e.CongCNT) * float64(e.Overflow()) / 2
		}
		if e.LastUsage > maxAdj {
			maxAdj = e.LastUsage
		}
	}

	for y := range g.h2D {
		for x := range g.h2D[y] {
			apply(&g.h2D[y][x])
		}
	}
	for y := range g.v2D {
		for x := range g.v2D[y] {
			apply(&g.v2D[y][x])
		}
	}

	return maxAdj
}
