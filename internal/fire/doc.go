// Package fire implements the fire subsystem: the active/initial fire
// grids, Moore-neighborhood propagation, Euclidean fire-distance, the
// risky/danger risk classification, the fire floor field, and exit-blocked
// detection.
//
// Propagation is a cellular automaton in the style of the
// opd-ai-venture fire_propagation_system reference: every current fire
// cell remains fire, and every 8-neighbor that is not an obstacle catches;
// exit cells never convert to fire even when every approach to them does.
package fire
