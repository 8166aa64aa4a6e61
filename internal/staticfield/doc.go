// Package staticfield computes the time-invariant geometric attraction
// field pedestrians follow toward exits, in two variants:
//
//   - Zheng: a single global field, Euclidean distance to the nearest
//     open exit cell, v[i][j] = 1/(d+1).
//   - Varas: a per-exit field filled by repeated 8-neighbor relaxation
//     (axial cost 1, diagonal cost configurable, typically √2) until no
//     cell changes. This package computes the fixpoint with a multi-source
//     binary-heap relaxation — the same "lazy decrease-key" priority-queue
//     pattern internal/cellgraph's Dijkstra uses for single-source
//     shortest paths — rather than a naive repeat-until-stable sweep;
//     because every edge weight is non-negative the two produce identical
//     fixpoints, so this is a performance choice, not a semantic one.
package staticfield
