package cellgraph

import (
	"container/heap"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// pqItem is one entry in the lazy decrease-key priority queue: a vertex
// may appear more than once after a relaxation improves its distance, and
// a stale entry is simply skipped once popped because it no longer
// matches the authoritative dist map.
type pqItem struct {
	c    gridkit.Coordinate
	dist int64
}

type itemHeap []pqItem

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Dijkstra computes the minimum-weight distance from source to every
// vertex reachable without crossing an edge weighing >= infThreshold —
// such an edge is treated as impassable, not merely expensive. A vertex
// with no such path is absent from the result. Returns ErrVertexNotFound
// if source is not a vertex of g. Edge weights must be non-negative;
// callers in this repo only ever construct non-negative weights.
// Complexity: O((V+E) log V).
func Dijkstra(g *Graph, source gridkit.Coordinate, infThreshold int64) (map[gridkit.Coordinate]int64, error) {
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	dist := map[gridkit.Coordinate]int64{source: 0}
	visited := make(map[gridkit.Coordinate]bool)

	pq := &itemHeap{{c: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if visited[cur.c] {
			continue
		}
		visited[cur.c] = true

		for n, w := range g.adj[cur.c] {
			if w >= infThreshold {
				continue
			}
			nd := cur.dist + w
			if d, ok := dist[n]; !ok || nd < d {
				dist[n] = nd
				heap.Push(pq, pqItem{c: n, dist: nd})
			}
		}
	}
	return dist, nil
}
