package graph

// NeighborMasks builds one Bitset per vertex, where mask[v] has bit u set
// iff v and u are adjacent in g. It is constructed once per algorithm
// invocation that needs bit-parallel neighborhoods (the clique algorithms)
// and is read-only thereafter.
//
// Complexity: O(V^2) time (one adjacency probe per vertex pair); the masks
// themselves take O(V^2 / 64) words.
func NeighborMasks(g *Graph) []Bitset {
	masks := make([]Bitset, g.V)
	for v := 0; v < g.V; v++ {
		masks[v] = NewBitset(g.V)
		row := g.Row(v)
		for u := 0; u < g.V; u++ {
			if row[u] != 0 {
				masks[v].Set(u)
			}
		}
	}
	return masks
}
