// Package router is the top-level global-routing API: it owns the grid and
// the per-net Steiner trees, drives Steiner-tree construction, pattern
// routing, the maze rip-up-and-reroute iteration, and 3D layer assignment
// in sequence, and returns the final per-net 3D segments (spec §4.4
// "Iteration driver", §4.6 "Output").
//
// A Router is configured via functional options (Config/Option, matching
// every other package in this module) and the external collaborator
// interfaces spec §6 names: a Steiner tree builder, a logger sink, and a
// congestion sink. The grid and net set are exclusively owned by one
// Router.Run call — no internal mutex, matching the teacher's distinction
// between lock-bearing shared structures and lock-free per-call ones.
//
// Run(ctx) checks ctx.Err() between iterations and aborts with the
// context's error if canceled; otherwise it runs to one of: zero total
// overflow, 25 monotonic increases in total overflow, or the configured
// OverflowIterations cap, in that priority order, restoring the best-so-far
// tree snapshot if the final state is worse.
package router
