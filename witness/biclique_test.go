package witness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/witness"
)

func TestBicliqueEngineClique(t *testing.T) {
	// spec.md E3: biclique number of K5 is 4 == its degeneracy.
	g, err := degraph.Build(cliqueEdges(5))
	require.NoError(t, err)

	e, err := witness.NewBicliqueEngine(g)
	require.NoError(t, err)
	e.Run()

	assert.Equal(t, 4, e.Lower())
}

func TestBicliqueEngineEdgeless(t *testing.T) {
	// spec.md E4: biclique number of an edgeless graph is 0.
	g, err := degraph.Build(edgelessEdges(10))
	require.NoError(t, err)

	e, err := witness.NewBicliqueEngine(g)
	require.NoError(t, err)
	e.Run()

	assert.Equal(t, 0, e.Lower())
}
