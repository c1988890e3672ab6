package protocol_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsrv/protocol"
)

func parseLine(t *testing.T, input string) (*protocol.Request, error) {
	t.Helper()
	return protocol.ParseRequest(bufio.NewReader(strings.NewReader(input)))
}

func TestParseRequestRandomMode(t *testing.T) {
	req, err := parseLine(t, "EULER 4 4 12345\n")
	require.NoError(t, err)
	assert.Equal(t, "EULER", req.Algorithm)
	assert.False(t, req.WantPrint)
	assert.Equal(t, 4, req.Graph.V)
	assert.Equal(t, 4, req.Graph.E)
}

func TestParseRequestRandomModeWithPrint(t *testing.T) {
	req, err := parseLine(t, "MST 3 4 1 -p\n")
	require.NoError(t, err)
	assert.True(t, req.WantPrint)
	assert.Equal(t, 3, req.Graph.E)
}

func TestParseRequestDeterministicAcrossSeedRepeats(t *testing.T) {
	r1, err := parseLine(t, "MST 5 6 999\n")
	require.NoError(t, err)
	r2, err := parseLine(t, "MST 5 6 999\n")
	require.NoError(t, err)

	for u := 0; u < r1.Graph.V; u++ {
		for v := 0; v < r1.Graph.V; v++ {
			assert.Equal(t, r1.Graph.HasEdge(u, v), r2.Graph.HasEdge(u, v))
			assert.Equal(t, r1.Graph.Weight(u, v), r2.Graph.Weight(u, v))
		}
	}
}

func TestParseRequestExplicitMode(t *testing.T) {
	body := "EULER GRAPH 4 4\n0 1 1\n1 2 1\n2 3 1\n3 0 1\n"
	req, err := parseLine(t, body)
	require.NoError(t, err)
	assert.Equal(t, 4, req.Graph.E)
	assert.True(t, req.Graph.HasEdge(0, 1))
	assert.True(t, req.Graph.HasEdge(3, 0))
}

func TestParseRequestExplicitModeDefaultWeight(t *testing.T) {
	req, err := parseLine(t, "MST GRAPH 1 2\n0 1\n")
	require.NoError(t, err)
	assert.Equal(t, 1, req.Graph.Weight(0, 1))
}

func TestParseRequestExplicitModeDuplicateSilentlyDropped(t *testing.T) {
	body := "MST GRAPH 2 3\n0 1 3\n0 1 9\n"
	req, err := parseLine(t, body)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Graph.E)
	assert.Equal(t, 3, req.Graph.Weight(0, 1))
}

func TestParseRequestUnknownAlgorithm(t *testing.T) {
	_, err := parseLine(t, "BOGUS 1 2 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ALGO")
}

func TestParseRequestBadUsage(t *testing.T) {
	_, err := parseLine(t, "EULER 1 2\n")
	require.Error(t, err)
	var pe *protocol.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, protocol.KindUsage, pe.Kind)
}

func TestParseRequestBadFlag(t *testing.T) {
	_, err := parseLine(t, "EULER 1 2 1 -q\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad flag")
}

func TestParseRequestRangeErrors(t *testing.T) {
	cases := []struct {
		name, input, wantSubstr string
	}{
		{"zero vertices", "EULER 0 0 1\n", "V >= 1"},
		{"negative edges", "EULER -1 2 1\n", "E >= 0"},
		{"too many edges", "EULER 10 3 1\n", "E <= V*(V-1)/2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLine(t, tc.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSubstr)
		})
	}
}

func TestParseRequestExplicitModeEdgeLineErrors(t *testing.T) {
	cases := []struct {
		name, body, wantSubstr string
	}{
		{"self loop", "EULER GRAPH 1 3\n1 1 5\n", "self-loop"},
		{"out of range", "EULER GRAPH 1 3\n0 9 5\n", "edge endpoints"},
		{"non positive weight", "EULER GRAPH 1 3\n0 1 0\n", "weight must be positive"},
		{"malformed", "EULER GRAPH 1 3\nnotanumber 1\n", "malformed edge line"},
		{"truncated", "EULER GRAPH 2 3\n0 1 1\n", "unexpected end of input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLine(t, tc.body)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSubstr)
		})
	}
}

func TestParseRequestEmptyInput(t *testing.T) {
	_, err := parseLine(t, "")
	require.Error(t, err)
}
