package diagnostics

import (
	"fmt"

	"github.com/floorfield/evacsim/internal/cellgraph"
	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/fire"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// hazardWeight marks an edge touching a Danger cell as impassable to
// cellgraph.Dijkstra's infThreshold. Chosen well above any plausible
// grid's edge count so it can never be confused with a real accumulated
// distance.
const hazardWeight int64 = 1 << 30

// HazardAwareDistance builds the same cell graph Reachability uses, but
// weighted so that any edge touching a Danger-classified cell (per
// fireSub.Risk) is effectively a wall, then runs cellgraph.Dijkstra from
// every cell of the named exit. Returns the shortest hazard-avoiding hop
// count from each reached cell to the nearest exit cell — the "safety
// margin" statistic. A cell with no hazard-avoiding path to the exit is
// simply absent from the result map.
// Complexity: O((V+E) log V) per exit cell.
func HazardAwareDistance(env *environment.Environment, fireSub *fire.Fire, exits []*exitmodel.Exit, exitID int) (map[gridkit.Coordinate]int64, error) {
	var target *exitmodel.Exit
	for _, e := range exits {
		if e.ID == exitID {
			target = e
			break
		}
	}
	if target == nil {
		return nil, ErrExitNotFound
	}

	g, err := buildHazardGraph(env, fireSub)
	if err != nil {
		return nil, err
	}

	best := make(map[gridkit.Coordinate]int64)
	for _, seed := range target.Coordinates {
		if !includable(env, seed) {
			continue
		}
		dist, err := cellgraph.Dijkstra(g, seed, hazardWeight)
		if err != nil {
			return nil, fmt.Errorf("diagnostics: hazard-aware distance: %w", err)
		}
		for c, d := range dist {
			if cur, ok := best[c]; !ok || d < cur {
				best[c] = d
			}
		}
	}
	return best, nil
}

// buildHazardGraph mirrors buildGraph but weights an edge hazardWeight
// whenever either endpoint is classified Danger by fireSub.Risk, instead
// of the uniform weight 1 a hazard-blind traversal would use.
func buildHazardGraph(env *environment.Environment, fireSub *fire.Fire) (*cellgraph.Graph, error) {
	g := cellgraph.NewGraph()

	danger := func(c gridkit.Coordinate) bool {
		return fireSub != nil && fireSub.Risk.At(c) == gridkit.Danger
	}

	for lin := 0; lin < env.Lines; lin++ {
		for col := 0; col < env.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if includable(env, c) {
				g.AddVertex(c)
			}
		}
	}

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
				weight := int64(1)
				if danger(c) || danger(n) {
					weight = hazardWeight
				}
				if err := g.AddEdge(c, n, weight); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
