package dfs

import "fmt"

// walker holds mutable state for one traversal.
type walker struct {
	adj  Adjacency
	opts Options
	res  *Result
}

// DFS visits every vertex reachable from start, recursing into neighbors
// in slice order, and returns them in discovery (pre-order) sequence.
// A start vertex without an entry in adj is treated as isolated.
func DFS(adj Adjacency, start string, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	w := &walker{
		adj:  adj,
		opts: buildOptions(opts),
		res: &Result{
			Order:  make([]string, 0, len(adj)),
			Depth:  make(map[string]int, len(adj)),
			Parent: make(map[string]string, len(adj)),
		},
	}

	return w.res, w.visit(start, 0)
}

// visit marks id discovered, runs the hook and recurses into unseen neighbors.
func (w *walker) visit(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %q: %w", id, err)
		}
	}

	for _, nbr := range w.adj[id] {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = id
		if err := w.visit(nbr, depth+1); err != nil {
			return err
		}
	}

	return nil
}
