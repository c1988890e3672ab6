package algorithms

import (
	"fmt"

	"github.com/katalvlaran/graphsrv/graph"
)

// MSTResult is the total result of MSTWeight.
type MSTResult struct {
	Connected bool
	Weight    int
}

const mstInf = int(^uint(0) >> 1) // max int, used as the "not yet reached" key

// MSTWeight computes the weight of a minimum spanning tree of g by dense
// Prim's algorithm, or reports that g does not span.
//
// Preconditions: no isolated vertex, and g reachable from vertex 0. An
// isolated vertex other than 0 already fails reachability from 0, so a
// single ConnectedFromZero call covers both. The one exception is V=1: its
// lone vertex has no edges, passes the check, and yields weight 0.
//
// Tie-break on equal keys: Prim's inner scan keeps the first (lowest
// index) minimum it finds, since it only replaces best when strictly
// smaller — this is the documented, testable tie-break.
//
// Complexity: O(V^2), the classic dense-Prim bound.
func MSTWeight(g *graph.Graph) MSTResult {
	if !g.ConnectedFromZero() {
		return MSTResult{Connected: false}
	}

	key := make([]int, g.V)
	inMST := make([]bool, g.V)
	for i := range key {
		key[i] = mstInf
	}
	key[0] = 0

	total := 0

	for iter := 0; iter < g.V; iter++ {
		u := -1
		best := mstInf
		for i := 0; i < g.V; i++ {
			if !inMST[i] && key[i] < best {
				best = key[i]
				u = i
			}
		}
		if u == -1 {
			return MSTResult{Connected: false}
		}

		inMST[u] = true
		if iter > 0 {
			total += best
		}

		row := g.Row(u)
		for v := 0; v < g.V; v++ {
			if !inMST[v] && row[v] != 0 {
				w := g.Weight(u, v)
				if w < key[v] {
					key[v] = w
				}
			}
		}
	}

	return MSTResult{Connected: true, Weight: total}
}

// RunMST executes MSTWeight and emits the wire response body.
func RunMST(g *graph.Graph, emit func(string)) {
	res := MSTWeight(g)
	if !res.Connected {
		emit("MST: graph is not connected (no spanning tree)\n")
		return
	}
	emit(fmt.Sprintf("MST total weight: %d\n", res.Weight))
}
