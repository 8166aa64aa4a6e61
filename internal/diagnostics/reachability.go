package diagnostics

import (
	"errors"

	"github.com/floorfield/evacsim/internal/cellgraph"
	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// ErrExitNotFound indicates no exit in exits carries the requested id.
var ErrExitNotFound = errors.New("diagnostics: no exit with the given id")

// Unreached marks a cell the requested exit's BFS frontier never touched.
const Unreached = -1

// Reachability projects env onto a graph and runs cellgraph.BFS from
// every cell of the named exit, returning the per-cell minimum
// hop-distance (a multi-cell exit is a multi-source BFS: each of its
// cells seeds its own traversal and the grid keeps the smallest result
// per cell). Cells never reached hold Unreached. This is purely a
// reporting statistic; the stochastic kernel never consults it.
// Complexity: O(L×C) for the projection plus O(V+E) per exit cell BFS.
func Reachability(env *environment.Environment, exits []*exitmodel.Exit, exitID int) (*gridkit.IntGrid, error) {
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

	g, err := buildGraph(env)
	if err != nil {
		return nil, err
	}

	result, err := gridkit.NewIntGrid(env.Lines, env.Columns)
	if err != nil {
		return nil, err
	}
	result.Fill(Unreached)

	for _, seed := range target.Coordinates {
		if !includable(env, seed) {
			continue
		}
		depth, err := cellgraph.BFS(g, seed)
		if err != nil {
			continue
		}
		for lin := 0; lin < env.Lines; lin++ {
			for col := 0; col < env.Columns; col++ {
				c := gridkit.Coordinate{Lin: lin, Col: col}
				d, reached := depth[c]
				if !reached {
					continue
				}
				if cur := result.At(c); cur == Unreached || d < cur {
					result.Set(c, d)
				}
			}
		}
	}
	return result, nil
}
