package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsrv/algorithms"
	"github.com/katalvlaran/graphsrv/graph"
)

func buildGraph(t *testing.T, v int, edges [][3]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(v)
	require.NoError(t, err)
	for _, e := range edges {
		w := e[2]
		if w == 0 {
			w = 1
		}
		require.True(t, g.AddEdge(e[0], e[1], w), "edge %v should be added", e)
	}
	return g
}

func TestEulerCircuitFourCycle(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}})

	res := algorithms.EulerCircuit(g)
	require.True(t, res.Found)
	require.Len(t, res.Path, g.E+1)
	assert.Equal(t, res.Path[0], res.Path[len(res.Path)-1])
	assertCoversEdgesExactly(t, g, res.Path)
}

func TestEulerCircuitOnEmptyGraphIsTrivial(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	res := algorithms.EulerCircuit(g)
	require.True(t, res.Found)
	assert.Equal(t, []int{0}, res.Path)
}

func TestEulerCircuitReportsDisconnected(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {2, 3, 1}})

	res := algorithms.EulerCircuit(g)
	assert.False(t, res.Found)
	assert.True(t, res.Disconnected)
}

func TestEulerCircuitReportsOddDegreeCount(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})

	res := algorithms.EulerCircuit(g)
	assert.False(t, res.Found)
	assert.False(t, res.Disconnected)
	assert.Equal(t, 2, res.OddCount)
}

func TestEulerCircuitDuplicateEdgeIsDroppedBeforeAlgorithm(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.True(t, g.AddEdge(0, 1, 1))
	require.False(t, g.AddEdge(0, 1, 1), "duplicate edge must be rejected")
	require.Equal(t, 1, g.E)

	res := algorithms.EulerCircuit(g)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.OddCount)
}

func TestRunEulerFormatsSuccessLine(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}})

	var out string
	algorithms.RunEuler(g, func(s string) { out += s })

	assert.Contains(t, out, "Euler circuit exists. Sequence of vertices:\n")
}

func TestRunEulerFormatsOddDegreeLine(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})

	var out string
	algorithms.RunEuler(g, func(s string) { out += s })

	assert.Equal(t, "No Euler circuit: 2 vertices have odd degree.\n", out)
}

// assertCoversEdgesExactly checks that the multiset of consecutive pairs in
// path equals g's edge set exactly once each.
func assertCoversEdgesExactly(t *testing.T, g *graph.Graph, path []int) {
	t.Helper()

	type pair struct{ a, b int }
	norm := func(a, b int) pair {
		if a > b {
			a, b = b, a
		}
		return pair{a, b}
	}

	want := map[pair]int{}
	for i := 0; i < g.V; i++ {
		for j := i + 1; j < g.V; j++ {
			if g.HasEdge(i, j) {
				want[norm(i, j)]++
			}
		}
	}

	got := map[pair]int{}
	for i := 0; i+1 < len(path); i++ {
		got[norm(path[i], path[i+1])]++
	}

	assert.Equal(t, want, got)
}
