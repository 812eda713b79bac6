package dfs

import (
	"fmt"
	"sort"
)

// TopologicalSort orders every vertex of adj so that each edge u→v has u
// before v, using Kahn's algorithm. Vertices that only appear as
// neighbors are included.
//
// Vertices with no incoming edges are seeded in lexical order and
// successors are released in adjacency-slice order, so the result is
// deterministic. A graph with a cycle yields ErrCycleDetected.
//
// Complexity: O(V log V + E) time, O(V) memory.
func TopologicalSort(adj Adjacency, opts ...Option) ([]string, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	inDeg := make(map[string]int, len(adj))
	for u, nbrs := range adj {
		if _, ok := inDeg[u]; !ok {
			inDeg[u] = 0
		}
		for _, v := range nbrs {
			inDeg[v]++
		}
	}

	queue := make([]string, 0, len(inDeg))
	for v, d := range inDeg {
		if d == 0 {
			queue = append(queue, v)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(inDeg))
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range adj[u] {
			inDeg[v]--
			if inDeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) != len(inDeg) {
		return nil, fmt.Errorf("%w: %d of %d vertices lie on or behind a cycle",
			ErrCycleDetected, len(inDeg)-len(order), len(inDeg))
	}

	return order, nil
}
