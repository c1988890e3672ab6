package graph

import "math/bits"

const wordBits = 64

// Bitset is a fixed-width dynamic bitset backed by 64-bit words, used to
// represent neighborhood masks for the Bron–Kerbosch clique algorithms.
// Bits at index >= N are never set by any Bitset method; callers that build
// masks by hand (NeighborMasks) must respect the same invariant so that
// PopCount and the other word-parallel operations never need to mask the
// tail word themselves.
type Bitset struct {
	words []uint64
	n     int
}

// NewBitset allocates a Bitset with room for n bits, all initially clear.
//
// Complexity: O(n/64).
func NewBitset(n int) Bitset {
	return Bitset{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Len returns the bit-width the Bitset was constructed with.
func (b *Bitset) Len() int { return b.n }

// Set turns bit i on.
//
// Complexity: O(1).
func (b *Bitset) Set(i int) {
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear turns bit i off.
//
// Complexity: O(1).
func (b *Bitset) Clear(i int) {
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
//
// Complexity: O(1).
func (b *Bitset) Test(i int) bool {
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// PopCount returns the number of set bits.
//
// Complexity: O(words).
func (b *Bitset) PopCount() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// IsEmpty reports whether no bits are set. Cheaper than PopCount() == 0
// since it can short-circuit on the first nonzero word.
//
// Complexity: O(words) worst case, O(1) best case.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
//
// Complexity: O(words).
func (b *Bitset) Clone() Bitset {
	out := Bitset{words: make([]uint64, len(b.words)), n: b.n}
	copy(out.words, b.words)
	return out
}

// Union returns a new Bitset holding the bitwise OR of b and other, which
// must share the same bit-width.
//
// Complexity: O(words).
func (b *Bitset) Union(other *Bitset) Bitset {
	out := NewBitset(b.n)
	for i := range b.words {
		out.words[i] = b.words[i] | other.words[i]
	}
	return out
}

// Intersect returns a new Bitset holding the bitwise AND of b and other.
//
// Complexity: O(words).
func (b *Bitset) Intersect(other *Bitset) Bitset {
	out := NewBitset(b.n)
	for i := range b.words {
		out.words[i] = b.words[i] & other.words[i]
	}
	return out
}

// Difference returns a new Bitset holding bits set in b but not in other
// (b AND NOT other).
//
// Complexity: O(words).
func (b *Bitset) Difference(other *Bitset) Bitset {
	out := NewBitset(b.n)
	for i := range b.words {
		out.words[i] = b.words[i] &^ other.words[i]
	}
	return out
}

// IntersectCount returns PopCount of the intersection without allocating
// the intermediate Bitset, the operation the Tomita pivot choice spends
// most of its time on.
//
// Complexity: O(words).
func (b *Bitset) IntersectCount(other *Bitset) int {
	count := 0
	for i := range b.words {
		count += bits.OnesCount64(b.words[i] & other.words[i])
	}
	return count
}

// ForEachSet invokes fn once per set bit, in ascending index order, which
// is what gives the clique algorithms their documented lowest-index
// tie-break behavior.
//
// Complexity: O(words + popcount).
func (b *Bitset) ForEachSet(fn func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(wi*wordBits + tz)
			w &^= 1 << uint(tz)
		}
	}
}
