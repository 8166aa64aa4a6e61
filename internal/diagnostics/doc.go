// Package diagnostics provides supplementary, non-authoritative
// egress-safety statistics — BFS hop-distance, hazard-aware shortest
// distance to an exit, and sealed-pocket connectivity with a suggested
// wall-breach path — by projecting one environment's passable cells onto
// an internal/cellgraph.Graph and running its BFS/Dijkstra over it.
// Nothing here feeds back into the stochastic kernel: internal/pedestrian
// and internal/staticfield never import this package.
package diagnostics
