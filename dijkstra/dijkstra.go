package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from source to every vertex of g
// reachable through arcs with non-negative weights.
//
// Validation (in order): empty source (ErrEmptySource), nil graph
// (ErrGraphNil), invalid options, then a scan of every arc for negative
// weights (ErrNegativeWeight). A source with no entry in g is allowed and
// simply reaches nothing.
//
// With WithMaxDistance, vertices farther than the bound stay at +Inf.
// The heap uses lazy decrease-key: improved distances are pushed again and
// stale entries are skipped on pop.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g Graph, source string, opts ...Option) (*Result, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for u, arcs := range g {
		for _, a := range arcs {
			if a.Weight < 0 || math.IsNaN(a.Weight) {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	res := &Result{
		Source: source,
		Dist:   make(map[string]float64, len(g)+1),
		Prev:   make(map[string]string, len(g)),
	}
	for v := range g {
		res.Dist[v] = math.Inf(1)
	}
	res.Dist[source] = 0

	settled := make(map[string]bool, len(g))
	pq := &nodePQ{{id: source, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if settled[item.id] {
			continue
		}
		settled[item.id] = true

		for _, a := range g[item.id] {
			nd := item.dist + a.Weight
			if nd > cfg.MaxDistance {
				continue
			}
			if old, ok := res.Dist[a.To]; !ok || nd < old {
				res.Dist[a.To] = nd
				res.Prev[a.To] = item.id
				heap.Push(pq, nodeItem{id: a.To, dist: nd})
			}
		}
	}

	return res, nil
}

// nodeItem is a heap entry; duplicates for one vertex are allowed.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id for stable ties.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
