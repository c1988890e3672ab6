package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsrv/algorithms"
)

func TestLookupKnownAlgorithms(t *testing.T) {
	for _, name := range algorithms.Names() {
		s, err := algorithms.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		assert.NotNil(t, s.Run)
	}
}

func TestLookupUnknownAlgorithm(t *testing.T) {
	_, err := algorithms.Lookup("BOGUS")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}
