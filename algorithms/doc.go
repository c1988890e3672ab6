// Package algorithms implements the five graph algorithms the server can
// run — Euler circuit (Hierholzer), MST (dense Prim), maximum clique and
// clique counting (Bron–Kerbosch, with and without the Tomita pivot), and
// Hamiltonian cycle (pruned backtracking) — plus the strategy registry
// that dispatches a wire command name to one of them.
//
// Every algorithm consumes an immutable *graph.Graph and returns a total
// result type: success and "no such circuit/cycle/tree" are both ordinary
// return values, never errors. Only a genuinely malformed request (caught
// earlier, in protocol) produces an error.
package algorithms
