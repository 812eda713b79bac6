// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on graphs with non-negative float64 weights.
//
// The graph is a map from vertex ID to outgoing arcs. Every key of the map
// appears in Result.Dist, at +Inf when unreachable; vertices that only occur
// as arc targets appear once reached.
//
// Complexity:
//
//   - Time:  O((V + E) log V), one heap push per successful relaxation.
//   - Space: O(V + E) for distances, predecessors and the lazy heap.
//
// Usage:
//
//	g := dijkstra.Graph{
//	    "A": {{To: "B", Weight: 4}, {To: "C", Weight: 1}},
//	    "C": {{To: "B", Weight: 2}},
//	}
//	res, err := dijkstra.Dijkstra(g, "A")
//	// res.Dist["B"] == 3, res.PathTo("B") == [A C B]
//
// Errors:
//
//   - ErrEmptySource      empty source ID
//   - ErrGraphNil         nil graph
//   - ErrNegativeWeight   any arc weight < 0 or NaN
//   - ErrOptionViolation  WithMaxDistance(d) with d < 0 or NaN
package dijkstra
