package bfs

import "fmt"

// queueItem pairs a vertex with its depth.
type queueItem struct {
	id    string
	depth int
}

// BFS walks adj breadth-first from start and returns the visit order with
// depths and parent links. Neighbors are enqueued in slice order, so the
// result is deterministic. A start vertex without an entry in adj is
// treated as isolated.
//
// Returns ErrGraphNil, ErrOptionViolation, the context error on
// cancellation, or a wrapped OnVisit error.
func BFS(adj Adjacency, start string, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{
		Order:  make([]string, 0, len(adj)),
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string, len(adj)),
	}
	queue := []queueItem{{id: start}}

	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, nbr := range adj[item.id] {
			if _, seen := res.Depth[nbr]; seen || !o.FilterNeighbor(item.id, nbr) {
				continue
			}
			res.Depth[nbr] = next
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: next})
		}
	}

	return res, nil
}
