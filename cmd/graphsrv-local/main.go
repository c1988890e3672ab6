// Command graphsrv-local runs one algorithm against a seeded random graph
// without opening a socket, grounded on the #ifndef GRAPH_NO_MAIN
// standalone driver in original_source/graph.c — useful for exercising an
// algorithm's output format during development.
//
// The arguments form the request header only; no edge lines follow it, so
// explicit (GRAPH) mode succeeds only with zero edges.
//
// Usage: graphsrv-local <ALGO> <edges> <vertices> <seed> [-p]
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/graphsrv/algorithms"
	"github.com/katalvlaran/graphsrv/protocol"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 4 || len(args) > 5 {
		fmt.Fprintf(stderr, "Usage: graphsrv-local <ALGO> <edges> <vertices> <seed> [-p]\n")
		return 2
	}

	line := strings.Join(args, " ") + "\n"
	req, err := protocol.ParseRequest(bufio.NewReader(strings.NewReader(line)))
	if err != nil {
		fmt.Fprint(stdout, protocol.FormatError(err))
		return 0
	}

	strategy, err := algorithms.Lookup(req.Algorithm)
	if err != nil {
		fmt.Fprint(stdout, protocol.FormatError(err))
		return 0
	}

	if req.WantPrint {
		fmt.Fprint(stdout, protocol.AdjacencyMatrixPrefix(req.Graph))
	}
	strategy.Run(req.Graph, func(l string) { fmt.Fprint(stdout, l) })

	return 0
}
