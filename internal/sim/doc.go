// Package sim drives the animation loop over a fixed spatial grid.
//
// [Grid] fixes the sample positions for a run, [Sampler] turns a time
// into a [Frame] (a full, stateless recompute), [Clock] is the simulated
// time owned by the driving loop, and [Driver] runs the headless
// tick-record loop used by the run/plot/analyze commands. The interactive
// render surfaces (internal/viz, internal/gui) drive a Sampler and Clock
// directly from their own frame callbacks.
package sim
