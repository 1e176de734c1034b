// Package grid implements the congestion grid data model of the global
// router: a 3D array of routing tiles stacked across metal layers, the 2D
// and 3D edges between adjacent tiles, per-layer capacity, blockage
// ("reduction"), usage, and the overflow accounting the rip-up-and-reroute
// loop depends on (spec §3 "Grid", §4.1 "Grid").
//
// A horizontal edge H(layer,y,x) connects (x,y) and (x+1,y) on layer; a
// vertical edge V(layer,y,x) connects (x,y) and (x,y+1). Edge2D is the
// same-direction projection summed over all layers: cap_2D = Σ_layer
// cap_3D(layer, same direction) is an invariant every mutator preserves
// (spec §4.1, testable property 4).
//
// Complexity: grid construction is O(X·Y·L); a capacity adjustment or usage
// update touches exactly one 3D edge and its 2D projection in O(1); a full
// overflow scan is O(X·Y·L).
package grid
