// Package report renders the three output modes this system supports —
// per-timestep grid visualizations, per-run timestep counts, and a
// cross-run visit heatmap — from the kernel's own grids. Nothing here is
// read back by the kernel; rendering is a one-way, write-only concern.
package report
