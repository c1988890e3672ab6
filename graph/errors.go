package graph

import "errors"

// Sentinel errors for graph construction. Callers MUST use errors.Is to
// branch on these; messages are not part of the contract.
var (
	// ErrInvalidVertexCount indicates V < 1 was requested of New.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be >= 1")
)
