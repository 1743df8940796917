package degraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcdim/degraph"
)

func clique(n int) []degraph.Edge {
	var edges []degraph.Edge
	for u := uint32(0); u < uint32(n); u++ {
		for v := u + 1; v < uint32(n); v++ {
			edges = append(edges, degraph.Edge{U: u, V: v})
		}
	}

	return edges
}

func TestBuildCliqueDegeneracy(t *testing.T) {
	g, err := degraph.Build(clique(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 10, g.NumEdges())
	assert.Equal(t, 4, g.Degeneracy())
}

func TestLeftRightPartitionIsConsistent(t *testing.T) {
	edges := []degraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}, {U: 2, V: 3}}
	g, err := degraph.Build(edges)
	require.NoError(t, err)

	for _, v := range g.Vertices() {
		pv, ok := g.Position(v)
		require.True(t, ok)

		for _, u := range g.LeftNeighbours(v) {
			pu, _ := g.Position(u)
			assert.Less(t, pu, pv, "left neighbour must precede v in the ordering")
		}
		for _, u := range g.RightNeighbours(v) {
			pu, _ := g.Position(u)
			assert.Greater(t, pu, pv, "right neighbour must follow v in the ordering")
		}
		assert.Equal(t, g.Degree(v), len(g.LeftNeighbours(v))+len(g.RightNeighbours(v)))
	}
}

func TestBuildWithOrdering(t *testing.T) {
	edges := []degraph.Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	g, err := degraph.BuildWithOrdering(edges, []degraph.Vertex{3, 1, 2})
	require.NoError(t, err)

	p3, _ := g.Position(3)
	p1, _ := g.Position(1)
	p2, _ := g.Position(2)
	assert.Equal(t, 0, p3)
	assert.Equal(t, 1, p1)
	assert.Equal(t, 2, p2)

	assert.Equal(t, []degraph.Vertex{1, 3}, g.LeftNeighbours(2))
}

func TestBuildWithOrderingRejectsMismatch(t *testing.T) {
	edges := []degraph.Edge{{U: 0, V: 1}}

	_, err := degraph.BuildWithOrdering(edges, []degraph.Vertex{0})
	assert.ErrorIs(t, err, degraph.ErrOrderingSizeMismatch)

	_, err = degraph.BuildWithOrdering(edges, []degraph.Vertex{0, 9})
	assert.ErrorIs(t, err, degraph.ErrOrderingUnknownVertex)
}

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := degraph.Build(nil)
	assert.ErrorIs(t, err, degraph.ErrNoVertices)
}

func TestEdgelessGraphHasZeroDegeneracy(t *testing.T) {
	g, err := degraph.Build([]degraph.Edge{{U: 0, V: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, g.Degeneracy())
}
