package diagnostics

import (
	"github.com/floorfield/evacsim/internal/cellgraph"
	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// includable reports whether c should become a graph vertex: a plain
// passable cell, or an open (non-fire-blocked) exit cell. Walls and
// fire-blocked exits are excluded entirely — this projection only models
// cells a pedestrian could actually occupy.
func includable(env *environment.Environment, c gridkit.Coordinate) bool {
	if env.ExitsOnly.At(c) == gridkit.ExitCell {
		return true
	}
	return env.Obstacle.At(c) != gridkit.Impassable
}

// buildGraph projects env's passable cells onto a four-connected
// cellgraph.Graph, one vertex per includable cell and one unit-weight
// edge per adjacent pair of includable cells. Serves both Reachability
// (which ignores weight) and HazardAwareDistance (which needs it).
// Complexity: O(L×C).
func buildGraph(env *environment.Environment) (*cellgraph.Graph, error) {
	g := cellgraph.NewGraph()

	for lin := 0; lin < env.Lines; lin++ {
		for col := 0; col < env.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if includable(env, c) {
				g.AddVertex(c)
			}
		}
	}

	// Forward-only offsets (right, down) so each adjacent pair is linked
	// exactly once; AddEdge mirrors the undirected edge automatically.
	offsets := [2][2]int{{0, 1}, {1, 0}}
	for lin := 0; lin < env.Lines; lin++ {
		for col := 0; col < env.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if !includable(env, c) {
				continue
			}
			for _, d := range offsets {
				n := gridkit.Coordinate{Lin: lin + d[0], Col: col + d[1]}
				if !env.InBounds(n) || !includable(env, n) {
					continue
				}
				if err := g.AddEdge(c, n, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
