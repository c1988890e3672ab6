package protocol

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsrv/graph"
)

// AdjacencyMatrixPrefix renders the "-p" preamble: a V×V 0/1 adjacency
// matrix, one row per line, space-separated with a trailing space before
// the newline — matching the reference server's row-at-a-time
// "%d " formatting exactly.
func AdjacencyMatrixPrefix(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("Graph: V=")
	b.WriteString(strconv.Itoa(g.V))
	b.WriteString(", E=")
	b.WriteString(strconv.Itoa(g.E))
	b.WriteString("\nAdjacency matrix:\n")

	for i := 0; i < g.V; i++ {
		row := g.Row(i)
		for j := 0; j < g.V; j++ {
			if row[j] != 0 {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatError renders any error returned from ParseRequest as the exact
// line the sender stage must write to the client: "ERR <msg>\n". Errors
// that are not a *ParseError still get this treatment with their own
// Error() text, so a caller never needs to special-case unexpected types.
func FormatError(err error) string {
	return "ERR " + err.Error() + "\n"
}
