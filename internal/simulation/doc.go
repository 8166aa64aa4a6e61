// Package simulation implements the per-timestep driver: the eight-phase
// movement pipeline, threading a single deterministic *rand.Rand through
// every component call for the run.
package simulation
