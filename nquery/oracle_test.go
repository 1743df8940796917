package nquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/nquery"
)

// buildShatterGraph returns the edges of the canonical "universe plus one
// tester vertex per subset" construction: vertices 0..k-1 form the
// universe, and for every subset of the universe a distinct tester vertex
// (numbered from k upward) is connected to exactly that subset. The tester
// for the empty subset has no edges and so never enters the graph; the
// empty subset is still realized by the universe vertices themselves, which
// have no neighbours inside the universe. The universe is then shattered by
// construction, translating the original implementation's
// shattered_test_small.
func buildShatterGraph(k uint32) []degraph.Edge {
	var edges []degraph.Edge
	next := k
	for mask := uint32(0); mask < (uint32(1) << k); mask++ {
		tester := next
		next++
		for u := uint32(0); u < k; u++ {
			if mask&(1<<u) != 0 {
				edges = append(edges, degraph.Edge{U: u, V: tester})
			}
		}
		if mask == 0 {
			// The empty-subset tester gets no edges, so Build never sees
			// it; see the doc comment above.
			_ = tester
		}
	}

	return edges
}

func universe(k uint32) []degraph.Vertex {
	res := make([]degraph.Vertex, k)
	for i := range res {
		res[i] = uint32(i)
	}

	return res
}

func TestShatteredSmallUniverse(t *testing.T) {
	for k := uint32(2); k <= 5; k++ {
		g, err := degraph.Build(buildShatterGraph(k))
		require.NoError(t, err)

		o := nquery.New(g)
		o.EnsureSize(int(k))

		assert.True(t, o.IsShattered(universe(k)), "k=%d", k)
	}
}

func TestNotShattered(t *testing.T) {
	// {0,1,2} plus a tester for every subset except {0,1,2} itself: no
	// vertex is adjacent to all of {0,1,2}, so that subset is never
	// realized and the universe is not shattered.
	k := uint32(3)
	var edges []degraph.Edge
	next := k
	for mask := uint32(0); mask < (uint32(1)<<k)-1; mask++ {
		tester := next
		next++
		for u := uint32(0); u < k; u++ {
			if mask&(1<<u) != 0 {
				edges = append(edges, degraph.Edge{U: u, V: tester})
			}
		}
	}
	// An extra 0-1 edge gives vertices 0 and 1 a neighbour inside the
	// universe; neither is adjacent to all of {0,1,2}, so the full set
	// stays unrealized.
	edges = append(edges, degraph.Edge{U: 0, V: 1})

	g, err := degraph.Build(edges)
	require.NoError(t, err)

	o := nquery.New(g)
	o.EnsureSize(int(k))
	assert.False(t, o.IsShattered(universe(k)))
}

func TestContainsBicliqueOnClique(t *testing.T) {
	// spec.md E3: K5 has biclique number 4 == its degeneracy.
	var edges []degraph.Edge
	for u := uint32(0); u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			edges = append(edges, degraph.Edge{U: u, V: v})
		}
	}
	g, err := degraph.Build(edges)
	require.NoError(t, err)

	o := nquery.New(g)
	o.EnsureSize(4)

	// The left-neighbourhood of the last vertex in any degeneracy
	// ordering of K5 has exactly 4 elements (the graph's degeneracy),
	// and that vertex itself witnesses the biclique.
	var last degraph.Vertex
	maxLeft := -1
	var lastLeft []degraph.Vertex
	for _, v := range g.Vertices() {
		left := g.LeftNeighbours(v)
		if len(left) > maxLeft {
			maxLeft = len(left)
			last = v
			lastLeft = left
		}
	}
	_ = last
	assert.True(t, o.ContainsBiclique(lastLeft))
}

func TestContainsBicliqueOnEdgelessGraph(t *testing.T) {
	// spec.md E4: an edgeless graph has biclique number 0 (no edges at
	// all), so no single vertex is a biclique witness set.
	edges := []degraph.Edge{{U: 0, V: 0}, {U: 1, V: 1}}
	g, err := degraph.Build(edges)
	require.NoError(t, err)

	o := nquery.New(g)
	o.EnsureSize(1)

	assert.False(t, o.ContainsBiclique([]degraph.Vertex{0}))
}

func TestDegreeProfileSortedDescending(t *testing.T) {
	edges := []degraph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}}
	g, err := degraph.Build(edges)
	require.NoError(t, err)

	o := nquery.New(g)
	profile := o.DegreeProfile(0)
	for i := 1; i < len(profile); i++ {
		assert.GreaterOrEqual(t, profile[i-1], profile[i])
	}
}
