package staticfield

import (
	"container/heap"

	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// moore lists the eight neighbor offsets and whether each is diagonal.
var moore = [8]struct {
	dLin, dCol int
	diagonal   bool
}{
	{-1, -1, true}, {-1, 0, false}, {-1, 1, true},
	{0, -1, false}, {0, 1, false},
	{1, -1, true}, {1, 0, false}, {1, 1, true},
}

// Varas fills exit.PrivateStaticWeight with the BFS-relaxation field:
// every cell's value is the minimal-cost path to any of the exit's cells,
// where an axial step costs 1.0 and a diagonal step costs diagonalCost,
// subject to gridkit.DiagonalPassable. exit.PrivateStructure is refreshed
// from obstacle first, so the exit's private snapshot stays in sync.
//
// Returns ErrInaccessible without modifying PrivateStaticWeight if the
// exit has no passable axial neighbor on any of its cells.
//
// Implemented as a multi-source binary-heap relaxation (see doc.go) rather
// than a naive repeat-until-stable sweep — the fixpoint is identical
// because every edge weight is non-negative.
// Complexity: O(L×C×log(L×C)).
func Varas(obstacle, exitsOnly *gridkit.KindGrid, exit *exitmodel.Exit, diagonalCost float64, preventCornerCrossing bool) error {
	if !exit.Accessible(obstacle, exitsOnly) {
		return ErrInaccessible
	}

	exit.PrivateStructure.CopyFrom(obstacle)

	field := exit.PrivateStaticWeight
	field.Fill(0)
	lines, columns := obstacle.Lines, obstacle.Columns

	const inf = 1e18
	dist := make([][]float64, lines)
	visited := make([][]bool, lines)
	for i := range dist {
		dist[i] = make([]float64, columns)
		visited[i] = make([]bool, columns)
		for j := range dist[i] {
			dist[i][j] = inf
		}
	}

	pq := make(nodePQ, 0, lines*columns)
	heap.Init(&pq)
	for _, c := range exit.Coordinates {
		dist[c.Lin][c.Col] = 0
		heap.Push(&pq, &nodeItem{coord: c, dist: 0})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		c := item.coord
		if visited[c.Lin][c.Col] {
			continue
		}
		visited[c.Lin][c.Col] = true

		for _, m := range moore {
			n := gridkit.Coordinate{Lin: c.Lin + m.dLin, Col: c.Col + m.dCol}
			if !obstacle.InBounds(n) || !gridkit.Passable(obstacle, exitsOnly, n) {
				continue
			}
			if m.diagonal && !gridkit.DiagonalPassable(obstacle, c, m.dLin, m.dCol, preventCornerCrossing) {
				continue
			}
			step := 1.0
			if m.diagonal {
				step = diagonalCost
			}
			nd := dist[c.Lin][c.Col] + step
			if nd < dist[n.Lin][n.Col] {
				dist[n.Lin][n.Col] = nd
				heap.Push(&pq, &nodeItem{coord: n, dist: nd})
			}
		}
	}

	for lin := 0; lin < lines; lin++ {
		for col := 0; col < columns; col++ {
			if dist[lin][col] < inf {
				field.Set(gridkit.Coordinate{Lin: lin, Col: col}, dist[lin][col])
			}
		}
	}
	return nil
}

// nodeItem pairs a grid coordinate with its current best-known distance.
type nodeItem struct {
	coord gridkit.Coordinate
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with a
// lazy decrease-key strategy: stale entries are skipped on pop via the
// visited grid rather than located and updated in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
