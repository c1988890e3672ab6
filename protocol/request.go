package protocol

import "github.com/katalvlaran/graphsrv/graph"

// Request is the validated result of parsing one connection's header (and,
// in explicit mode, its edge lines). Ownership of Graph moves with the
// Request through the pipeline: whichever stage currently holds a Request
// owns its Graph exclusively.
type Request struct {
	Algorithm string
	WantPrint bool
	Graph     *graph.Graph
}
