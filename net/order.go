// File: order.go
// Role: the edge- and net-ordering helpers spec §4.4 names
// (netedgeOrderDec, StNetOrder) and the supplemented OrderNetPin/OrderTree/
// OrderNetEdge accounting structs from DataType.h (SPEC_FULL.md
// "Supplemented features").
package net

import "sort"

// EdgesByLengthDesc sorts a tree's edge ids by current route length
// (RouteLen, falling back to the straight-line Len for unrouted edges),
// descending — netedgeOrderDec in spec §4.4.
func EdgesByLengthDesc(t *StTree) []int {
	ids := make([]int, len(t.Edges))
	for i := range ids {
		ids[i] = i
	}
	length := func(i int) int {
		e := &t.Edges[i]
		if l := e.Route.RouteLen(); l > 0 {
			return l
		}

		return e.Len
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return length(ids[i]) > length(ids[j])
	})

	return ids
}

// NetOverflow pairs a net id with its accumulated overflow, the unit
// StNetOrder in spec §4.4 sorts nets by.
type NetOverflow struct {
	NetID    int
	Overflow int
}

// NetsByOverflowDesc sorts net ids by accumulated overflow descending, so
// the iteration driver reroutes the worst-congested nets first — StNetOrder
// in spec §4.4 ("Edge ordering").
func NetsByOverflowDesc(overflow map[int]int) []NetOverflow {
	out := make([]NetOverflow, 0, len(overflow))
	for id, ov := range overflow {
		out = append(out, NetOverflow{NetID: id, Overflow: ov})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Overflow != out[j].Overflow {
			return out[i].Overflow > out[j].Overflow
		}

		return out[i].NetID < out[j].NetID
	})

	return out
}

// PinOrderEntry mirrors the original's OrderNetPin: per-net bookkeeping used
// when ranking nets by "length over pin count" before a from-scratch RSMT
// pass.
type PinOrderEntry struct {
	NetID int
	MinX  int
	// NetLengthOverPins is total wirelength divided by pin count (npv in
	// the original), used as a tie-breaker alongside MinX.
	NetLengthOverPins float64
}

// PinOrderAsc sorts PinOrderEntry values by NetLengthOverPins ascending,
// then MinX ascending, reproducing the original's OrderNetPin ordering.
func PinOrderAsc(entries []PinOrderEntry) []PinOrderEntry {
	out := make([]PinOrderEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NetLengthOverPins != out[j].NetLengthOverPins {
			return out[i].NetLengthOverPins < out[j].NetLengthOverPins
		}

		return out[i].MinX < out[j].MinX
	})

	return out
}

// TreeOrderEntry mirrors the original's OrderTree: per-tree bookkeeping for
// a length-based net processing order.
type TreeOrderEntry struct {
	NetID  int
	Length int
	MinX   int
}

// TreeOrderAsc sorts TreeOrderEntry values by Length ascending, matching the
// original's OrderTree.
func TreeOrderAsc(entries []TreeOrderEntry) []TreeOrderEntry {
	out := make([]TreeOrderEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Length < out[j].Length })

	return out
}

// EdgeOrderEntry mirrors the original's OrderNetEdge: a (length, edgeID)
// pair used to rank individual tree edges for re-route scheduling across
// nets, independent of which net they belong to.
type EdgeOrderEntry struct {
	Length int
	EdgeID int
}

// EdgeOrderAsc sorts EdgeOrderEntry values by Length ascending.
func EdgeOrderAsc(entries []EdgeOrderEntry) []EdgeOrderEntry {
	out := make([]EdgeOrderEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Length < out[j].Length })

	return out
}
