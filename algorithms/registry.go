package algorithms

import "github.com/katalvlaran/graphsrv/graph"

// RunFunc is the uniform capability every registered algorithm exposes:
// consume an immutable graph, stream result lines to emit.
type RunFunc func(g *graph.Graph, emit func(string))

// Strategy is an immutable registry entry: independent, safe to hold onto
// or share across goroutines indefinitely, unlike a factory that hands
// back a pointer to a single mutable record overwritten on every lookup.
type Strategy struct {
	Name string
	Run  RunFunc
}

// registry is a static, read-only map built once at package init. The
// five names are exactly the ALGO tokens accepted on the wire.
var registry = map[string]Strategy{
	"EULER":      {Name: "EULER", Run: RunEuler},
	"MST":        {Name: "MST", Run: RunMST},
	"MAXCLIQUE":  {Name: "MAXCLIQUE", Run: RunMaxClique},
	"COUNTCLQ3P": {Name: "COUNTCLQ3P", Run: RunCountCliques3Plus},
	"HAMILTON":   {Name: "HAMILTON", Run: RunHamilton},
}

// Lookup resolves a wire command name to its Strategy.
func Lookup(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return Strategy{}, ErrUnknownAlgorithm
	}
	return s, nil
}

// Names returns the supported algorithm names, in a fixed order, for
// building usage/error messages.
func Names() []string {
	return []string{"EULER", "MST", "MAXCLIQUE", "COUNTCLQ3P", "HAMILTON"}
}
