package cellgraph

import (
	"errors"
	"sort"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// ErrVertexNotFound is returned by AddEdge when either endpoint was never
// added via AddVertex.
var ErrVertexNotFound = errors.New("cellgraph: vertex not found")

// Graph is a weighted undirected adjacency map over gridkit.Coordinate
// vertices. The zero value is not usable; construct with NewGraph.
type Graph struct {
	adj map[gridkit.Coordinate]map[gridkit.Coordinate]int64
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[gridkit.Coordinate]map[gridkit.Coordinate]int64)}
}

// AddVertex inserts c with no edges, if not already present. Idempotent.
func (g *Graph) AddVertex(c gridkit.Coordinate) {
	if _, ok := g.adj[c]; !ok {
		g.adj[c] = make(map[gridkit.Coordinate]int64)
	}
}

// HasVertex reports whether c was added via AddVertex.
func (g *Graph) HasVertex(c gridkit.Coordinate) bool {
	_, ok := g.adj[c]
	return ok
}

// AddEdge links a and b with the given weight in both directions,
// overwriting any existing edge between them. Returns ErrVertexNotFound
// if either endpoint has not been added.
func (g *Graph) AddEdge(a, b gridkit.Coordinate, weight int64) error {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	g.adj[a][b] = weight
	g.adj[b][a] = weight
	return nil
}

// Neighbors returns c's adjacent vertices and the edge weight to each,
// or nil if c is not a vertex. The caller must not mutate the result.
func (g *Graph) Neighbors(c gridkit.Coordinate) map[gridkit.Coordinate]int64 {
	return g.adj[c]
}

// Vertices returns every vertex in g, sorted by (Lin, Col) for
// deterministic iteration in tests and diagnostics.
func (g *Graph) Vertices() []gridkit.Coordinate {
	out := make([]gridkit.Coordinate, 0, len(g.adj))
	for c := range g.adj {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lin != out[j].Lin {
			return out[i].Lin < out[j].Lin
		}
		return out[i].Col < out[j].Col
	})
	return out
}
