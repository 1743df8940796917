package witness

import (
	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/nquery"
	"github.com/katalvlaran/vcdim/skipcombs"
	"github.com/katalvlaran/vcdim/vecset"
)

// boundSearch holds the (lower, upper) bound-tightening machinery shared
// by LadderEngine, CrownEngine and BicliqueEngine (spec.md §4.7): all
// three probe k-subsets of every vertex's augmented neighbourhood
// {v} ∪ L(v) for increasing k, tightening lower on a hit and upper when a
// whole size is exhausted without one.
type boundSearch struct {
	graph  *degraph.DegenGraph
	oracle *nquery.Oracle
	log    applog.Logger
}

func newBoundSearch(graph *degraph.DegenGraph) boundSearch {
	return boundSearch{graph: graph, oracle: nquery.New(graph), log: applog.Noop()}
}

// tryEachVertex scans every vertex's augmented neighbourhood for a
// k-subset satisfying predicate, returning the witnessing subset and true
// on the first hit. Order follows graph.Vertices(); within one vertex,
// subsets are enumerated lexicographically.
func (b *boundSearch) tryEachVertex(k int, predicate func([]degraph.Vertex) bool) ([]degraph.Vertex, bool) {
	for _, v := range b.graph.Vertices() {
		n := vecset.Union([]degraph.Vertex{v}, b.graph.LeftNeighbours(v))
		if len(n) < k {
			continue
		}

		it := skipcombs.New(n, k)
		for {
			s, ok := it.Next()
			if !ok {
				break
			}
			if predicate(s) {
				return s, true
			}
		}
	}

	return nil, false
}
