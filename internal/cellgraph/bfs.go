package cellgraph

import "github.com/floorfield/evacsim/internal/gridkit"

// BFS returns the hop-distance from source to every vertex reachable from
// it, source itself included at distance 0. A vertex g cannot reach is
// simply absent from the result. Returns ErrVertexNotFound if source is
// not a vertex of g.
// Complexity: O(V+E).
func BFS(g *Graph, source gridkit.Coordinate) (map[gridkit.Coordinate]int, error) {
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	depth := make(map[gridkit.Coordinate]int)
	depth[source] = 0
	queue := []gridkit.Coordinate{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.adj[u] {
			if _, seen := depth[v]; seen {
				continue
			}
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}
	return depth, nil
}
