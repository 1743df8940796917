package degraph

import "errors"

var (
	// ErrNoVertices is returned by Build when the input graph has no
	// vertices to order.
	ErrNoVertices = errors.New("degraph: graph has no vertices")

	// ErrOrderingSizeMismatch is returned by BuildWithOrdering when the
	// supplied ordering does not contain exactly one entry per vertex.
	ErrOrderingSizeMismatch = errors.New("degraph: ordering does not match vertex set")

	// ErrOrderingUnknownVertex is returned by BuildWithOrdering when the
	// supplied ordering references a vertex absent from the graph.
	ErrOrderingUnknownVertex = errors.New("degraph: ordering references unknown vertex")

	// ErrUnknownVertex names a vertex id that is not part of the frozen
	// graph. DegenGraph's accessors do not return it: given such an id
	// they return empty results, and Position reports false.
	ErrUnknownVertex = errors.New("degraph: unknown vertex")
)
