package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/priyam/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cityGraph() dijkstra.Graph {
	return dijkstra.Graph{
		"A": {{To: "B", Weight: 4}, {To: "C", Weight: 1}},
		"B": {{To: "D", Weight: 1}},
		"C": {{To: "B", Weight: 2}, {To: "D", Weight: 5}},
		"D": nil,
		"E": {{To: "A", Weight: 1}},
	}
}

// TestDijkstra_Distances checks relaxed distances and unreachable vertices.
func TestDijkstra_Distances(t *testing.T) {
	res, err := dijkstra.Dijkstra(cityGraph(), "A")
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist["A"])
	assert.Equal(t, 3.0, res.Dist["B"])
	assert.Equal(t, 1.0, res.Dist["C"])
	assert.Equal(t, 4.0, res.Dist["D"])
	assert.True(t, math.IsInf(res.Dist["E"], 1))
}

// TestDijkstra_PathTo rebuilds the cheapest route.
func TestDijkstra_PathTo(t *testing.T) {
	res, err := dijkstra.Dijkstra(cityGraph(), "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	_, err = res.PathTo("E")
	assert.Error(t, err)
	_, err = res.PathTo("nowhere")
	assert.Error(t, err)
}

// TestDijkstra_TargetsOutsideKeys reaches vertices that have no entry.
func TestDijkstra_TargetsOutsideKeys(t *testing.T) {
	res, err := dijkstra.Dijkstra(dijkstra.Graph{"S": {{To: "T", Weight: 2.5}}}, "S")
	require.NoError(t, err)
	assert.Equal(t, 2.5, res.Dist["T"])

	res, err = dijkstra.Dijkstra(dijkstra.Graph{"X": nil}, "S")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["S"])
	assert.True(t, math.IsInf(res.Dist["X"], 1))
}

// TestDijkstra_MaxDistance leaves far vertices at +Inf.
func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(cityGraph(), "A", dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist["B"])
	assert.True(t, math.IsInf(res.Dist["D"], 1))

	_, err = dijkstra.Dijkstra(cityGraph(), "A", dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.Dijkstra(cityGraph(), "A", dijkstra.WithMaxDistance(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// TestDijkstra_Errors covers input validation.
func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra(cityGraph(), "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)

	_, err = dijkstra.Dijkstra(dijkstra.Graph{"A": {{To: "B", Weight: -1}}}, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestDijkstra_ZeroWeights allows free edges.
func TestDijkstra_ZeroWeights(t *testing.T) {
	g := dijkstra.Graph{"A": {{To: "B", Weight: 0}}, "B": {{To: "C", Weight: 0}}}
	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["C"])
}
