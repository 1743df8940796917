package cmd

import (
	"fmt"

	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/ioedge"
)

// loadGraph reads an edge-list file into a frozen DegenGraph, and, when
// candidatesPath is nonempty, an optional shattered-candidates file
// (spec.md §6 "<file> [<candidates-file>]").
func loadGraph(edgesPath, candidatesPath string) (*degraph.DegenGraph, []degraph.Vertex, error) {
	edges, err := ioedge.LoadEdges(edgesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("vcdim: loading %q: %w", edgesPath, err)
	}

	g, err := degraph.Build(edges)
	if err != nil {
		return nil, nil, fmt.Errorf("vcdim: building graph from %q: %w", edgesPath, err)
	}

	var candidates []degraph.Vertex
	if candidatesPath != "" {
		candidates, err = ioedge.LoadCandidates(candidatesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("vcdim: loading %q: %w", candidatesPath, err)
		}
	}

	return g, candidates, nil
}

// candidatesArg returns args[1] if present, else "".
func candidatesArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}

	return ""
}
