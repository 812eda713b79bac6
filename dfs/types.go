// Package dfs defines types and options for depth-first traversal and
// topological ordering of adjacency maps.
package dfs

import (
	"context"
	"errors"
)

// Adjacency maps a vertex ID to its out-neighbors, in visiting order.
type Adjacency map[string][]string

var (
	// ErrGraphNil is returned when a nil adjacency map is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort when the graph is not a DAG.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS and TopologicalSort.
type Option func(*Options)

// Options holds the traversal settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is first discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures a depth-first traversal.
type Result struct {
	Order  []string          // pre-order discovery sequence
	Depth  map[string]int    // recursion depth at discovery
	Parent map[string]string // DFS-tree predecessor; absent for the start
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
