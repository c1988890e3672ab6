package algorithms

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsrv/graph"
)

// HamiltonResult is the total result of HamiltonCycle.
type HamiltonResult struct {
	Found bool
	Cycle []int // length V+1, Cycle[0] == Cycle[V], when Found
}

// HamiltonCycle searches for a Hamiltonian cycle of g by pruned
// backtracking, fixing start=0 to eliminate rotational symmetry.
//
// Preconditions: V >= 3, g connected among non-isolated vertices, and
// every vertex has degree >= 2 (a vertex of degree < 2 can never sit on a
// cycle). At each depth, candidate neighbors of the last placed vertex are
// tried in ascending index order, skipping used vertices and vertices with
// degree < 2; the first complete extension wins.
//
// Complexity: O(V!) worst case, pruned heavily in practice by the degree
// and used-vertex checks.
func HamiltonCycle(g *graph.Graph) HamiltonResult {
	if g.V < 3 {
		return HamiltonResult{}
	}
	if !g.ConnectedAmongNonIsolated() {
		return HamiltonResult{}
	}
	for v := 0; v < g.V; v++ {
		if g.Degree(v) < 2 {
			return HamiltonResult{}
		}
	}

	used := make([]bool, g.V)
	path := make([]int, g.V)
	path[0] = 0
	used[0] = true

	if hamiltonExtend(g, path, used, 1) {
		cycle := make([]int, g.V+1)
		copy(cycle, path)
		cycle[g.V] = path[0]
		return HamiltonResult{Found: true, Cycle: cycle}
	}
	return HamiltonResult{}
}

func hamiltonExtend(g *graph.Graph, path []int, used []bool, pos int) bool {
	if pos == g.V {
		return g.HasEdge(path[pos-1], path[0])
	}

	last := path[pos-1]
	row := g.Row(last)
	for v := 0; v < g.V; v++ {
		if row[v] == 0 || used[v] || g.Degree(v) < 2 {
			continue
		}

		used[v] = true
		path[pos] = v

		if hamiltonExtend(g, path, used, pos+1) {
			return true
		}

		used[v] = false
	}
	return false
}

// RunHamilton executes HamiltonCycle and emits the wire response body.
func RunHamilton(g *graph.Graph, emit func(string)) {
	res := HamiltonCycle(g)
	if !res.Found {
		emit("No Hamiltonian cycle.\n")
		return
	}

	parts := make([]string, len(res.Cycle))
	for i, v := range res.Cycle {
		parts[i] = strconv.Itoa(v)
	}
	emit("Hamiltonian cycle found:\n" + strings.Join(parts, " -> ") + "\n")
}
