// Package dfs implements depth-first traversal and topological sorting
// over adjacency maps.
//
// What
//
//   - DFS: recursive pre-order walk from a start vertex, recording
//     discovery order, depth and parent links.
//   - TopologicalSort: Kahn's algorithm; fails with ErrCycleDetected
//     when the graph is not acyclic.
//
// Determinism
//
//	DFS follows adjacency-slice order. TopologicalSort seeds source
//	vertices in lexical order, since Go maps have no iteration order.
//
// Complexity
//
//   - DFS:             O(V + E) time, O(V) memory (recursion depth up to V)
//   - TopologicalSort: O(V log V + E) time, O(V) memory
//
// Usage
//
//	res, err := dfs.DFS(adj, "A")
//	order, err := dfs.TopologicalSort(dfs.Adjacency{"shirt": {"tie"}, "tie": {"jacket"}})
//
// Errors
//
//   - ErrGraphNil       nil adjacency map
//   - ErrCycleDetected  TopologicalSort on a cyclic graph
//   - ctx.Err()         cancellation via WithContext
//   - wrapped OnVisit errors
package dfs
