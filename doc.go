// Package graphsrv is a concurrent TCP server that runs five classic graph
// algorithms — Eulerian circuit, minimum spanning tree, maximum clique,
// clique counting, and Hamiltonian cycle — against graphs supplied either
// as an explicit edge list or generated from a seed.
//
// The module is organized as:
//
//	graph/      — the Graph/Bitset data model the algorithms operate on
//	algorithms/ — the five algorithms plus the name-to-Strategy registry
//	protocol/   — wire grammar: request parsing, adjacency-matrix rendering
//	rng/        — the deterministic generator behind seeded random graphs
//	server/     — the Leader–Follower acceptor pool and Active Object pipeline
//	cmd/        — the graphsrv server binary and its companion CLI tools
//
// See DESIGN.md for the graph-algorithms library this module's
// concurrency and testing idiom is drawn from, and for which of its
// packages were adapted in versus dropped as out of this server's domain.
package graphsrv
