// Package graph defines the undirected, positively weighted simple graph
// that the algorithms package operates on, plus the fixed-width bitset that
// backs neighborhood masks for the clique algorithms.
//
// A Graph is built once per request from either a seeded random
// specification or an explicit edge list, read only thereafter, and
// discarded once its result has been handed to the sender stage. There is
// no incremental mutation API beyond AddEdge — callers build the whole
// graph up front.
package graph
