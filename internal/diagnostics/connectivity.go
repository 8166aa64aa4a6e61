package diagnostics

import (
	"errors"

	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// ErrNoSourceCells is returned by BreachPath when given an empty src.
var ErrNoSourceCells = errors.New("diagnostics: no source cells")

// ErrNoExitCells is returned by BreachPath when env has no exit cell at
// all, so no breach could ever succeed.
var ErrNoExitCells = errors.New("diagnostics: environment has no exit cells")

// ErrNoPath is returned by BreachPath if the 0-1 BFS exhausts the grid
// without reaching an exit cell; this cannot happen on a finite,
// in-bounds grid with at least one exit cell, since any wall can always
// be breached at cost 1, but is checked defensively.
var ErrNoPath = errors.New("diagnostics: no breach path to an exit cell")

// IsolatedCell names a passable cell that cannot reach any exit.
type IsolatedCell struct {
	Coordinate gridkit.Coordinate
}

// IsolatedComponent groups the isolated cells of one sealed connected
// component together with the minimal wall-breach path that would
// connect it to the nearest exit cell. BreachPath and BreachCost are
// nil/zero if the breach computation itself failed (it practically never
// does; see ErrNoPath).
type IsolatedComponent struct {
	Cells      []gridkit.Coordinate
	BreachPath []gridkit.Coordinate
	BreachCost int
}

// components partitions env's includable cells into maximal
// four-connected groups via flood fill.
// Complexity: O(L×C).
func components(env *environment.Environment) [][]gridkit.Coordinate {
	visited := make(map[gridkit.Coordinate]bool)
	var comps [][]gridkit.Coordinate

	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for lin := 0; lin < env.Lines; lin++ {
		for col := 0; col < env.Columns; col++ {
			start := gridkit.Coordinate{Lin: lin, Col: col}
			if !includable(env, start) || visited[start] {
				continue
			}
			queue := []gridkit.Coordinate{start}
			visited[start] = true
			var comp []gridkit.Coordinate
			for qi := 0; qi < len(queue); qi++ {
				c := queue[qi]
				comp = append(comp, c)
				for _, d := range offsets {
					n := gridkit.Coordinate{Lin: c.Lin + d[0], Col: c.Col + d[1]}
					if !env.InBounds(n) || !includable(env, n) || visited[n] {
						continue
					}
					visited[n] = true
					queue = append(queue, n)
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// hasExit reports whether comp contains any open exit cell.
func hasExit(env *environment.Environment, comp []gridkit.Coordinate) bool {
	for _, c := range comp {
		if env.ExitsOnly.At(c) == gridkit.ExitCell {
			return true
		}
	}
	return false
}

// ValidateConnectivity reports every passable cell that does not sit in
// the same connected component as an open exit cell — a layout a
// pedestrian could be placed into with no possible route out. It is a
// pre-flight check on a layout (the validate CLI subcommand runs
// IsolatedComponents, the grouped form), not something the stochastic
// kernel itself consults.
// Complexity: O(L×C).
func ValidateConnectivity(env *environment.Environment) []IsolatedCell {
	var isolated []IsolatedCell
	for _, comp := range components(env) {
		if hasExit(env, comp) {
			continue
		}
		for _, c := range comp {
			isolated = append(isolated, IsolatedCell{Coordinate: c})
		}
	}
	return isolated
}

// IsolatedComponents returns the same sealed cells ValidateConnectivity
// reports, grouped by connected component, and, for each, computes the
// minimal wall-breach path that would connect it to the nearest exit
// cell via BreachPath — the validate CLI subcommand's suggested fix for
// each sealed pocket it reports.
// Complexity: O(L×C) for componentization plus O(L×C) per component for
// its breach search.
func IsolatedComponents(env *environment.Environment) []IsolatedComponent {
	var out []IsolatedComponent
	for _, comp := range components(env) {
		if hasExit(env, comp) {
			continue
		}
		ic := IsolatedComponent{Cells: comp}
		if path, cost, err := BreachPath(env, comp); err == nil {
			ic.BreachPath = path
			ic.BreachCost = cost
		}
		out = append(out, ic)
	}
	return out
}

// BreachPath computes the minimal-cost path of wall-to-passable
// conversions connecting any cell of src to the nearest exit cell over
// the whole grid, via a 0-1 BFS with a ring-buffer deque: entering a cell
// already includable (per includable) costs 0, entering a wall costs 1.
// Returns the path (including both endpoints) and its total breach cost.
// Complexity: O(L×C).
func BreachPath(env *environment.Environment, src []gridkit.Coordinate) ([]gridkit.Coordinate, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrNoSourceCells
	}

	anyExit := false
	for lin := 0; lin < env.Lines && !anyExit; lin++ {
		for col := 0; col < env.Columns; col++ {
			if env.ExitsOnly.At(gridkit.Coordinate{Lin: lin, Col: col}) == gridkit.ExitCell {
				anyExit = true
				break
			}
		}
	}
	if !anyExit {
		return nil, 0, ErrNoExitCells
	}

	index := func(c gridkit.Coordinate) int { return c.Lin*env.Columns + c.Col }
	coordinate := func(idx int) gridkit.Coordinate {
		return gridkit.Coordinate{Lin: idx / env.Columns, Col: idx % env.Columns}
	}

	N := env.Lines * env.Columns
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	capDeque := N + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	for _, c := range src {
		i := index(c)
		if dist[i] == 0 {
			continue
		}
		dist[i] = 0
		head = (head - 1 + capDeque) % capDeque
		deque[head] = i
	}

	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	target := -1

	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque
		uc := coordinate(u)
		if env.ExitsOnly.At(uc) == gridkit.ExitCell {
			target = u
			break
		}
		for _, d := range offsets {
			n := gridkit.Coordinate{Lin: uc.Lin + d[0], Col: uc.Col + d[1]}
			if !env.InBounds(n) {
				continue
			}
			v := index(n)
			step := 0
			if !includable(env, n) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
	}
	path := make([]gridkit.Coordinate, len(idxPath))
	for i, idx := range idxPath {
		path[i] = coordinate(idx)
	}
	return path, dist[target], nil
}
