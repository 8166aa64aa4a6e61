// Package pedestrian implements the per-agent state machine and the
// transition-probability stencil pedestrians use to choose a target cell
// each timestep.
package pedestrian
