package witness

import "errors"

// ErrEmptyGraph is returned by New{VC,Ladder,Crown,Biclique}Engine when the
// supplied graph has no vertices: there is no degeneracy to bound a search
// by (spec.md §7 "Vacuous search").
var ErrEmptyGraph = errors.New("witness: graph has no vertices")
