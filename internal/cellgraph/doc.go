// Package cellgraph is a minimal weighted undirected graph keyed directly
// by gridkit.Coordinate, plus the two traversals internal/diagnostics runs
// over it: unweighted BFS hop-distance and Dijkstra's shortest distance
// with an impassable-edge threshold. Coordinate is already comparable and
// collision-free as a map key, so there is no "x,y" string-formatting
// indirection between a cell and its vertex identity.
package cellgraph
