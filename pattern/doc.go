// Package pattern implements the L-route, Z-route, and monotonic pattern
// routers of spec §4.3: fast, closed-form 2-pin segment routers that run
// before the maze router and mutate a grid.Grid's 2D estimated usage.
//
// Every router here is paired with a Ripup function that subtracts exactly
// the usage its Route added, so a caller can always undo a pattern route
// before trying a different one or handing the segment to the maze router.
//
// Edge cost follows the same soft-capacity rule throughout: an edge's cost
// is zero until its estimated usage (plus blockage) passes 0.9 of its
// capacity, then grows linearly — cheap while uncongested, increasingly
// expensive as an edge fills up.
package pattern
