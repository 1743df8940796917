package witness

import (
	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/degraph"
)

// BicliqueEngine tightens [lower, upper] bounds on the graph's biclique
// number (spec.md §4.7): initial lower is 0 if the graph has no edges,
// else 1; initial upper is d.
type BicliqueEngine struct {
	boundSearch
	lower, upper int
}

// NewBicliqueEngine constructs a BicliqueEngine over graph.
func NewBicliqueEngine(graph *degraph.DegenGraph) (*BicliqueEngine, error) {
	if graph.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	d := graph.Degeneracy()

	lower := 1
	if graph.NumEdges() == 0 {
		lower = 0
	}

	return &BicliqueEngine{boundSearch: newBoundSearch(graph), lower: lower, upper: d}, nil
}

// WithLogger attaches a progress logger.
func (e *BicliqueEngine) WithLogger(log applog.Logger) *BicliqueEngine {
	e.log = log
	e.oracle = e.oracle.WithLogger(log)

	return e
}

// Lower returns the current lower bound on the biclique number.
func (e *BicliqueEngine) Lower() int { return e.lower }

// Upper returns the current upper bound on the biclique number.
func (e *BicliqueEngine) Upper() int { return e.upper }

// Run executes the bound-tightening loop of spec.md §4.7.
func (e *BicliqueEngine) Run() {
	e.log.Info("biclique size is at most %d", e.upper)

	for k := e.lower + 1; k <= e.upper; k++ {
		e.oracle.EnsureSize(k)

		if s, ok := e.tryEachVertex(k, e.oracle.ContainsBiclique); ok {
			e.lower = k
			e.log.Info("biclique size is at least %d: %v", e.lower, s)
			if e.lower == e.upper {
				return
			}

			continue
		}

		e.upper = e.lower

		break
	}

	e.log.Info("biclique size is at most %d", e.upper)
}
