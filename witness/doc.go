// Package witness implements the four structural search engines of
// spec.md §4.6-§4.7: VCEngine (VC dimension via adaptive brute-force/cover
// enumeration), and LadderEngine/CrownEngine/BicliqueEngine (the shared
// lower/upper-bound tightening loop over the nquery oracle's pattern
// predicates).
//
// Every engine borrows its degeneracy-ordered graph (degraph.DegenGraph)
// immutably for its entire lifetime and owns a single nquery.Oracle
// exclusively (spec.md §5): no engine touches another engine's oracle or
// candidate sets, and none of them retry or recover from a failed search —
// a search either improves its bound or terminates reporting the current
// best.
package witness
