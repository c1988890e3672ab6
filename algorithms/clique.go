package algorithms

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsrv/graph"
)

// MaxClique finds a maximum clique of g via Bron–Kerbosch with the Tomita
// pivot, returning its size and one witnessing member list in ascending
// order.
//
// R=∅, P={0..V-1}, X=∅ to start; the base case compares |R| against the
// best-so-far only on strict improvement, so ties resolve to the first
// clique found; the pivot u ∈ P∪X maximizes |P∩N(u)|, breaking ties by
// lowest index; candidates v ∈ P\N(u) are visited in ascending order.
//
// An edgeless graph is a deliberate special case: it reports k=0 rather
// than the size-1 clique a literal reading of Bron–Kerbosch would produce
// from any single vertex — a lone vertex isn't what "clique" means on the
// wire here, and reporting size 1 for a graph with no edges at all would
// read as a more confusing answer than none.
//
// Complexity: O(3^(V/3)) worst case; the bitset intersections keep the
// constant small.
func MaxClique(g *graph.Graph) (int, []int) {
	if g.E == 0 {
		return 0, nil
	}

	masks := graph.NeighborMasks(g)

	p := graph.NewBitset(g.V)
	for i := 0; i < g.V; i++ {
		p.Set(i)
	}
	x := graph.NewBitset(g.V)

	best := 0
	var bestMembers []int

	bronKerboschPivot(nil, p, x, masks, &best, &bestMembers)
	sort.Ints(bestMembers)

	return best, bestMembers
}

func bronKerboschPivot(r []int, p, x graph.Bitset, masks []graph.Bitset, best *int, bestMembers *[]int) {
	if p.IsEmpty() && x.IsEmpty() {
		if len(r) > *best {
			*best = len(r)
			*bestMembers = append([]int{}, r...)
		}
		return
	}

	pivot := choosePivot(p, x, masks)
	candidates := p.Difference(&masks[pivot])

	var vs []int
	candidates.ForEachSet(func(v int) { vs = append(vs, v) })

	for _, v := range vs {
		nr := append(append([]int{}, r...), v)
		np := p.Intersect(&masks[v])
		nx := x.Intersect(&masks[v])

		bronKerboschPivot(nr, np, nx, masks, best, bestMembers)

		p.Clear(v)
		x.Set(v)
	}
}

// choosePivot picks u ∈ P∪X maximizing |P∩N(u)|, keeping the lowest index
// on ties by only replacing the incumbent on strict improvement.
func choosePivot(p, x graph.Bitset, masks []graph.Bitset) int {
	union := p.Union(&x)

	bestU, bestCount := -1, -1
	union.ForEachSet(func(u int) {
		c := p.IntersectCount(&masks[u])
		if c > bestCount {
			bestCount = c
			bestU = u
		}
	})
	return bestU
}

// CountCliques3Plus counts every (not just maximal) clique of size >= 3 via
// plain Bron–Kerbosch without pivoting.
//
// Complexity: O(2^V) worst case — every clique is visited once, and K_V
// has 2^V - 1 of them.
func CountCliques3Plus(g *graph.Graph) int64 {
	if g.V <= 2 {
		return 0
	}

	masks := graph.NeighborMasks(g)

	p := graph.NewBitset(g.V)
	for i := 0; i < g.V; i++ {
		p.Set(i)
	}

	var count int64
	countCliquesRec(0, p, masks, &count)
	return count
}

func countCliquesRec(size int, p graph.Bitset, masks []graph.Bitset, count *int64) {
	var vs []int
	p.ForEachSet(func(v int) { vs = append(vs, v) })

	for _, v := range vs {
		p.Clear(v)
		np := p.Intersect(&masks[v])

		newSize := size + 1
		if newSize >= 3 {
			*count++
		}

		countCliquesRec(newSize, np, masks, count)
	}
}

// RunMaxClique executes MaxClique and emits the wire response body.
func RunMaxClique(g *graph.Graph, emit func(string)) {
	k, members := MaxClique(g)
	emit(fmt.Sprintf("Max clique size = %d\n", k))
	if len(members) > 0 {
		parts := make([]string, len(members))
		for i, v := range members {
			parts[i] = strconv.Itoa(v)
		}
		emit("Vertices: " + strings.Join(parts, " ") + "\n")
	}
}

// RunCountCliques3Plus executes CountCliques3Plus and emits the wire
// response body.
func RunCountCliques3Plus(g *graph.Graph, emit func(string)) {
	emit(fmt.Sprintf("Number of cliques (size >= 3): %d\n", CountCliques3Plus(g)))
}
