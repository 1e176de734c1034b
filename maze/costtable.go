// File: costtable.go
// Role: precomputed congestion-history edge cost table — spec §4.4
// "Cost function".
package maze

import "math"

// CostTable evaluates the logistic congestion-history cost function:
//
//	cost(u, cap) = costHeight/(exp((cap-u)*logisCof)+1) + 1
//	               + (u>=cap ? costHeight/slope*(u-cap) : 0)
//
// Grid edges vary in capacity (blockages and per-layer track counts differ
// tile to tile), so the table is keyed on (usage, capacity) rather than a
// single fixed-capacity array; a small per-capacity row cache avoids
// repeating the exp() call for the common case where most edges along a
// search share the same nominal capacity.
type CostTable struct {
	costHeight float64
	logisCof   float64
	slope      float64
	rows       map[int][]float64
}

// rowWidth bounds how many usage values get cached per distinct capacity
// before falling back to the closed-form formula.
const rowWidth = 64

// BuildCostTable constructs a CostTable from the iteration driver's cost
// coefficients (spec §4.4 "Iteration driver" tuning parameters).
// costHeight, logisCof, and slope must be > 0.
func BuildCostTable(costHeight, logisCof, slope float64) CostTable {
	return CostTable{
		costHeight: costHeight,
		logisCof:   logisCof,
		slope:      slope,
		rows:       make(map[int][]float64),
	}
}

// Cost returns the routing cost of traversing an edge at usage u with
// capacity cap.
func (t CostTable) Cost(u, cap int) float64 {
	if u < 0 {
		u = 0
	}
	if cap < 1 {
		cap = 1
	}
	if u < rowWidth {
		row, ok := t.rows[cap]
		if !ok {
			row = make([]float64, rowWidth)
			for i := range row {
				row[i] = rawCost(i, cap, t.costHeight, t.logisCof, t.slope)
			}
			t.rows[cap] = row
		}

		return row[u]
	}

	return rawCost(u, cap, t.costHeight, t.logisCof, t.slope)
}

func rawCost(u, cap int, costHeight, logisCof, slope float64) float64 {
	base := costHeight/(math.Exp(float64(cap-u)*logisCof)+1) + 1
	if u >= cap {
		base += costHeight / slope * float64(u-cap)
	}

	return base
}
