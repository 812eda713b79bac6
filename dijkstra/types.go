// Package dijkstra defines the graph shape, options and error values for
// single-source shortest paths with non-negative weights.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Arc is a weighted edge to To.
type Arc struct {
	To     string
	Weight float64
}

// Graph maps a vertex ID to its outgoing arcs.
type Graph map[string][]Arc

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrGraphNil indicates that a nil Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates an arc with a negative (or NaN) weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid Option, such as a negative MaxDistance.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Option configures Dijkstra.
type Option func(*Options)

// Options holds the run settings.
type Options struct {
	// MaxDistance prunes relaxations that would exceed it. Defaults to +Inf.
	MaxDistance float64

	err error
}

// DefaultOptions returns an unbounded search.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance bounds the search radius; d < 0 or NaN yields ErrOptionViolation.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (got %v)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// Result holds shortest distances and predecessors.
//
//   - Dist[v] is +Inf for every key of the graph that was not reached.
//   - Prev[v] is the predecessor of v on a shortest path; absent for the
//     source and for unreached vertices.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo rebuilds the shortest path from the source to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
