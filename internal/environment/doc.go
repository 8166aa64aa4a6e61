// Package environment owns the four grids that describe the physical
// layout and live occupancy of one simulation instance: the obstacle
// layer, the exits-only layer, the pedestrian-position grid, and the
// cumulative heatmap. It does not own the fire grids (internal/fire) or
// any floor field (internal/staticfield, internal/dynamicfield) — those
// are separate components layered on top of the same Dims.
//
// Environment grids are allocated once per simulation set and reused
// across runs within that set; the per-timestep termination test is
// internal/simulation's Simulation.Done.
package environment
