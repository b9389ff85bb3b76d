package pathfind

import (
	"container/heap"
	"math"

	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/weight"
)

// Inf marks an unreachable node in distance results.
var Inf = math.Inf(1)

// pqItem is a node queued for relaxation.
type pqItem struct {
	id   string
	dist float64
	seq  int // insertion sequence, breaks cost ties deterministically
}

// priorityQueue is a min-heap over pending nodes ordered by distance.
type priorityQueue []pqItem

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}

func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *priorityQueue) Push(x any) { *q = append(*q, x.(pqItem)) }

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra's algorithm from start over forward edges,
// using the weight policy for edge costs. It returns the node sequence
// from start to end inclusive and the total cost, or (nil, Inf) when end
// is unreachable. All edge costs are positive by policy validation.
func ShortestPath(g *concept.Graph, pol weight.Policy, start, end string) ([]string, float64) {
	if start == end {
		return []string{start}, 0
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	done := make(map[string]bool)

	seq := 0
	pq := &priorityQueue{{id: start, dist: 0, seq: seq}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if done[cur.id] {
			continue
		}
		done[cur.id] = true

		if cur.id == end {
			return reconstruct(prev, start, end), cur.dist
		}

		for _, e := range g.EdgesOut(cur.id) {
			next := e.Target
			if done[next] {
				continue
			}
			d := cur.dist + pol.Cost(e.Type)
			if old, ok := dist[next]; !ok || d < old {
				dist[next] = d
				prev[next] = cur.id
				seq++
				heap.Push(pq, pqItem{id: next, dist: d, seq: seq})
			}
		}
	}

	return nil, Inf
}

// Distance returns the weighted shortest-path cost from start to end,
// or Inf when no path exists.
func Distance(g *concept.Graph, pol weight.Policy, start, end string) float64 {
	_, d := ShortestPath(g, pol, start, end)
	return d
}

// reconstruct walks the predecessor map back from end to start.
func reconstruct(prev map[string]string, start, end string) []string {
	path := []string{end}
	for node := end; node != start; {
		node = prev[node]
		path = append([]string{node}, path...)
	}
	return path
}
