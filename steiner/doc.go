// Package steiner builds the Rectilinear Steiner Minimum Tree (RSMT) for a
// net's pins and converts it into a net.StTree arena (spec §4.2 "RSMT
// builder").
//
// The Builder interface is the external collaborator contract
// (makeSteinerTree(xs, ys, s, accuracy) -> Tree); DefaultBuilder implements
// it with an incremental cheapest-insertion heuristic: pins are added to a
// growing tree one at a time, each landing on whichever existing edge (and
// corner of its bounding box) adds the least rectilinear wirelength, with
// horizontal and vertical distance weighted by Options.CoeffH/CoeffV.
// DefaultBuilder does not read Options.Mode and does not call
// StretchCongestion, so ModeNormal and ModeCongestionDriven build the same
// tree; congestion stretching is available only as the separate
// StretchCongestion function.
package steiner
