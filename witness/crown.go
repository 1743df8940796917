package witness

import (
	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/degraph"
)

// CrownEngine tightens [lower, upper] bounds on the graph's crown size
// (spec.md §4.7): initial lower is 0 if the graph is a complete graph
// (m = n(n-1)/2), else 1; initial upper is d+1.
type CrownEngine struct {
	boundSearch
	lower, upper int
}

// NewCrownEngine constructs a CrownEngine over graph.
func NewCrownEngine(graph *degraph.DegenGraph) (*CrownEngine, error) {
	if graph.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	d := graph.Degeneracy()
	n, m := graph.NumVertices(), graph.NumEdges()

	lower := 1
	if m == n*(n-1)/2 {
		lower = 0
	}

	return &CrownEngine{boundSearch: newBoundSearch(graph), lower: lower, upper: d + 1}, nil
}

// WithLogger attaches a progress logger.
func (e *CrownEngine) WithLogger(log applog.Logger) *CrownEngine {
	e.log = log
	e.oracle = e.oracle.WithLogger(log)

	return e
}

// Lower returns the current lower bound on the crown size.
func (e *CrownEngine) Lower() int { return e.lower }

// Upper returns the current upper bound on the crown size.
func (e *CrownEngine) Upper() int { return e.upper }

// Run executes the bound-tightening loop of spec.md §4.7.
func (e *CrownEngine) Run() {
	e.log.Info("crown size is at most %d", e.upper)

	for k := e.lower + 1; k <= e.upper; k++ {
		e.oracle.EnsureSize(k)

		if s, ok := e.tryEachVertex(k, e.oracle.ContainsCrown); ok {
			e.lower = k
			e.log.Info("crown size is at least %d: %v", e.lower, s)
			if e.lower == e.upper {
				return
			}

			continue
		}

		if e.lower+1 < e.upper {
			e.upper = e.lower + 1
		}

		break
	}

	e.log.Info("crown size is at most %d", e.upper)
}
