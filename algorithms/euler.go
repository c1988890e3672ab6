package algorithms

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphsrv/graph"
)

// EulerResult is the total result of EulerCircuit: exactly one of the
// three outcomes is populated (disconnected, odd-degree vertices, success).
type EulerResult struct {
	Found        bool
	Path         []int // length E+1 when Found
	Disconnected bool  // true iff the failure was preconditon (a)
	OddCount     int   // number of odd-degree vertices when the failure is (b)
}

// EulerCircuit finds a Hierholzer-order Eulerian circuit of g, or reports
// which precondition failed.
//
// Preconditions, checked in this order:
//  1. g is connected among its non-isolated vertices.
//  2. every vertex has even degree.
//
// On success the traversal consumes a mutable copy of g's adjacency matrix
// and a degree vector; it always picks the lowest-indexed available
// neighbor, which is what makes the output order deterministic and
// testable.
//
// Complexity: O(V^2 + V·E) — the neighbor scan inside the main loop is O(V)
// per edge consumed.
func EulerCircuit(g *graph.Graph) EulerResult {
	if !g.ConnectedAmongNonIsolated() {
		return EulerResult{Disconnected: true}
	}
	if !g.AllEvenDegrees() {
		return EulerResult{OddCount: g.OddDegreeCount()}
	}

	adj := g.AdjacencyCopy()
	deg := make([]int, g.V)
	for v := 0; v < g.V; v++ {
		deg[v] = g.Degree(v)
	}

	start := 0
	for v := 0; v < g.V; v++ {
		if deg[v] > 0 {
			start = v
			break
		}
	}

	stack := []int{start}
	out := make([]int, 0, g.E+1)

	for len(stack) > 0 {
		u := stack[len(stack)-1]

		next := -1
		if deg[u] > 0 {
			for v := 0; v < g.V; v++ {
				if adj[u][v] > 0 {
					next = v
					break
				}
			}
		}

		if next != -1 {
			adj[u][next]--
			adj[next][u]--
			deg[u]--
			deg[next]--
			stack = append(stack, next)
		} else {
			out = append(out, u)
			stack = stack[:len(stack)-1]
		}
	}

	return EulerResult{Found: true, Path: out}
}

// RunEuler executes EulerCircuit and emits the wire response body.
func RunEuler(g *graph.Graph, emit func(string)) {
	res := EulerCircuit(g)
	switch {
	case res.Disconnected:
		emit("No Euler circuit: graph is disconnected among non-isolated vertices.\n")
	case !res.Found:
		emit(fmt.Sprintf("No Euler circuit: %d vertices have odd degree.\n", res.OddCount))
	default:
		emit("Euler circuit exists. Sequence of vertices:\n")
		parts := make([]string, len(res.Path))
		for i, v := range res.Path {
			parts[i] = fmt.Sprintf("%d", v)
		}
		emit(strings.Join(parts, " -> ") + "\n")
	}
}
