package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphsrv/graph"
)

func TestNeighborMasksMatchAdjacency(t *testing.T) {
	g, _ := graph.New(5)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 3, 1)

	masks := graph.NeighborMasks(g)

	for v := 0; v < g.V; v++ {
		for u := 0; u < g.V; u++ {
			assert.Equal(t, g.HasEdge(v, u), masks[v].Test(u), "v=%d u=%d", v, u)
		}
	}
}
