// Package gridkit provides the row-major grid primitives shared by every
// other kernel package: allocation, filling, copying, summation, bounds
// checks, and the diagonal-passability test used by pedestrian movement.
//
// All grids in this repository are indexed [line][column] — line maps to
// the y-axis, column to the x-axis — and share the same L×C dimensions
// within one simulation. gridkit never allocates a grid implicitly; every
// constructor takes explicit dimensions so callers control lifetime and
// reuse, matching the "scoped ownership" resource model the kernel follows
// throughout (allocate once per run, reuse across timesteps).
//
// Kind is a small byte-palette enum replacing the negative integer
// sentinels (e.g. IMPASSABLE_OBJECT = -1000) a straightforward C port would
// carry over; tests pin the palette values so regressions in cell-kind
// encoding are caught immediately.
package gridkit
