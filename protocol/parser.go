package protocol

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsrv/algorithms"
	"github.com/katalvlaran/graphsrv/graph"
	"github.com/katalvlaran/graphsrv/rng"
)

// randomWeightMax bounds randomly generated edge weights to [1, randomWeightMax],
// matching GRAPH_RAND_WMAX in the reference C generator.
const randomWeightMax = 100

const maxHeaderTokens = 5

// ParseRequest reads one request off br: a single header line and, in
// explicit mode, exactly the announced number of edge lines. It supports
// two header grammars:
//
//	<ALGO> <E> <V> <SEED> [-p]        (random mode)
//	<ALGO> GRAPH <E> <V> [-p]         (explicit mode)
//
// On any validation failure it returns a *ParseError whose Error() text is
// exactly what belongs after "ERR " on the wire; the caller is responsible
// for writing that line and closing the connection.
func ParseRequest(br *bufio.Reader) (*Request, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, usageErrorf("empty request")
	}

	tokens := strings.Fields(line)
	if len(tokens) < 4 || len(tokens) > maxHeaderTokens {
		return nil, usageErrorf("usage: <ALGO> <E> <V> <SEED> [-p]  or  <ALGO> GRAPH <E> <V> [-p]")
	}

	algo := tokens[0]
	if _, err := algorithms.Lookup(algo); err != nil {
		return nil, usageErrorf("unknown ALGO. Supported: %s", strings.Join(algorithms.Names(), " "))
	}

	explicit := len(tokens) >= 2 && tokens[1] == "GRAPH"

	var eTok, vTok, seedTok string
	var flagTok string
	if explicit {
		if len(tokens) < 4 {
			return nil, usageErrorf("usage: <ALGO> GRAPH <E> <V> [-p]")
		}
		eTok, vTok = tokens[2], tokens[3]
		if len(tokens) == 5 {
			flagTok = tokens[4]
		}
	} else {
		if len(tokens) < 4 {
			return nil, usageErrorf("usage: <ALGO> <E> <V> <SEED> [-p]")
		}
		eTok, vTok, seedTok = tokens[1], tokens[2], tokens[3]
		if len(tokens) == 5 {
			flagTok = tokens[4]
		}
	}

	wantPrint := false
	if flagTok != "" {
		if flagTok != "-p" {
			return nil, usageErrorf("bad flag. Use -p or omit.")
		}
		wantPrint = true
	}

	e, v, err := parseCounts(eTok, vTok)
	if err != nil {
		return nil, err
	}

	var seed uint32
	if !explicit {
		s, err := strconv.ParseUint(seedTok, 10, 32)
		if err != nil {
			return nil, rangeErrorf("seed must be a 32-bit unsigned integer")
		}
		seed = uint32(s)
	}

	g, gerr := graph.New(v)
	if gerr != nil {
		return nil, rangeErrorf("invalid: V >= 1")
	}

	if explicit {
		if err := readExplicitEdges(br, g, e); err != nil {
			return nil, err
		}
	} else {
		generateRandomGraph(g, e, seed)
	}

	return &Request{Algorithm: algo, WantPrint: wantPrint, Graph: g}, nil
}

// parseCounts validates and parses the shared <E> <V> pair: V >= 1,
// 0 <= E <= V*(V-1)/2.
func parseCounts(eTok, vTok string) (e, v int, err error) {
	v, verr := strconv.Atoi(vTok)
	if verr != nil {
		return 0, 0, usageErrorf("bad params. V must be an integer")
	}
	if v < 1 {
		return 0, 0, rangeErrorf("invalid: V >= 1")
	}

	e, eerr := strconv.Atoi(eTok)
	if eerr != nil {
		return 0, 0, usageErrorf("bad params. E must be an integer")
	}
	if e < 0 {
		return 0, 0, rangeErrorf("invalid: E >= 0")
	}

	maxE := v * (v - 1) / 2
	if e > maxE {
		return 0, 0, rangeErrorf("invalid: E <= V*(V-1)/2 (max=%d)", maxE)
	}

	return e, v, nil
}

// generateRandomGraph samples targetE distinct edges with a per-request
// LCG seeded deterministically from seed: three draws per attempt (u, v,
// w), retrying silently on self-loop/duplicate. Because the generator is
// owned exclusively by this call rather than shared across connections,
// no mutex is needed around it.
func generateRandomGraph(g *graph.Graph, targetE int, seed uint32) {
	gen := rng.NewLCG(seed)
	for g.E < targetE {
		u := gen.Intn(g.V)
		v := gen.Intn(g.V)
		w := gen.Intn(randomWeightMax) + 1
		g.AddEdge(u, v, w)
	}
}

// readExplicitEdges reads exactly count "u v [w]" lines from br into g.
// Malformed syntax, out-of-range endpoints, self-loops, and non-positive
// weights abort the request with an EdgeLineError; duplicate edges are
// silently dropped but still consume one of the announced lines — the
// parser always reads exactly count lines regardless of how many end up
// in the graph. See DESIGN.md for why duplicates, specifically, are the
// one edge-line condition that does not abort.
func readExplicitEdges(br *bufio.Reader, g *graph.Graph, count int) error {
	for i := 0; i < count; i++ {
		line, err := readLine(br)
		if err != nil {
			return edgeLineErrorf("unexpected end of input reading edges")
		}

		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 3 {
			return edgeLineErrorf("malformed edge line")
		}

		u, uerr := strconv.Atoi(tokens[0])
		v, verr := strconv.Atoi(tokens[1])
		if uerr != nil || verr != nil {
			return edgeLineErrorf("malformed edge line")
		}

		w := 1
		if len(tokens) == 3 {
			wv, werr := strconv.Atoi(tokens[2])
			if werr != nil {
				return edgeLineErrorf("malformed edge line")
			}
			w = wv
		}

		if u < 0 || v < 0 || u >= g.V || v >= g.V {
			return edgeLineErrorf("edge endpoints")
		}
		if u == v {
			return edgeLineErrorf("self-loop not allowed")
		}
		if w <= 0 {
			return edgeLineErrorf("weight must be positive")
		}

		g.AddEdge(u, v, w) // false only means "duplicate": silently dropped
	}
	return nil
}

// readLine reads one LF-terminated line, stripping the trailing "\r\n" or
// "\n". io.EOF with no bytes read propagates as an error; a line with
// content but no trailing newline (client half-closed write side right
// after the final line) is still accepted, matching the reference
// server's byte-at-a-time read_line.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", err
	}
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
