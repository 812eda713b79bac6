// Package bfs implements breadth-first search over an adjacency map.
//
// What
//
//   - Visit vertices in non-decreasing edge distance from a start vertex.
//   - Record the visit order, each vertex's depth and its BFS-tree parent.
//   - Rebuild fewest-edge paths with Result.PathTo.
//
// Determinism
//
//	Neighbors are enqueued in the order of their adjacency slice, so the
//	same map always yields the same order.
//
// Complexity (V = vertices reached, E = edges scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	adj := bfs.Adjacency{"A": {"B", "C"}, "B": {"D"}}
//	res, err := bfs.BFS(adj, "A", bfs.WithMaxDepth(2))
//	// res.Order == [A B C D]
//
// Errors
//
//   - ErrGraphNil         nil adjacency map
//   - ErrOptionViolation  invalid option (negative MaxDepth)
//   - ctx.Err()           cancellation via WithContext
//   - wrapped OnVisit errors
package bfs
