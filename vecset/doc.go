// Package vecset implements set algebra on sorted, deduplicated []uint32
// sequences: the lingua franca the rest of this module uses whenever a
// "subset of vertices" needs to be combined. Using sorted slices instead of
// a hash- or tree-based set keeps the hot combinatorial paths in nquery and
// witness allocation-light and branch-predictable.
//
// Complexity: Union, Intersection, and Difference all run in O(|A|+|B|)
// and produce sorted, deduplicated output.
//
// Contract: every function assumes its inputs are already sorted ascending
// and deduplicated; violating that invariant produces undefined (but not
// unsafe) output, never a panic.
package vecset
