package witness

import (
	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/degraph"
)

// LadderEngine tightens [lower, upper] bounds on the graph's ladder index
// (spec.md §4.7): initial bounds are lower=1, upper=2d+1.
type LadderEngine struct {
	boundSearch
	lower, upper int
}

// NewLadderEngine constructs a LadderEngine over graph.
func NewLadderEngine(graph *degraph.DegenGraph) (*LadderEngine, error) {
	if graph.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	d := graph.Degeneracy()

	return &LadderEngine{boundSearch: newBoundSearch(graph), lower: 1, upper: 2*d + 1}, nil
}

// WithLogger attaches a progress logger.
func (e *LadderEngine) WithLogger(log applog.Logger) *LadderEngine {
	e.log = log
	e.oracle = e.oracle.WithLogger(log)

	return e
}

// Lower returns the current lower bound on the ladder index.
func (e *LadderEngine) Lower() int { return e.lower }

// Upper returns the current upper bound on the ladder index.
func (e *LadderEngine) Upper() int { return e.upper }

// Run executes the bound-tightening loop of spec.md §4.7 until lower
// meets upper or a size is exhausted without a hit.
func (e *LadderEngine) Run() {
	e.log.Info("ladder index is at most %d", e.upper)

	for k := e.lower + 1; k <= e.upper; k++ {
		e.oracle.EnsureSize(k)

		if s, ok := e.tryEachVertex(k, e.oracle.ContainsLadder); ok {
			e.lower = k
			e.log.Info("ladder index is at least %d: %v", e.lower, s)
			if e.lower == e.upper {
				return
			}

			continue
		}

		if 2*e.lower+1 < e.upper {
			e.upper = 2*e.lower + 1
		}

		break
	}

	e.log.Info("ladder index is at most %d", e.upper)
}
