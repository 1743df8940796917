// Package nquery implements the N-query oracle (spec.md §4.3-§4.4): given
// a degeneracy-ordered graph and a small candidate set S, it answers "how
// many vertices have neighbourhood restricted to S exactly X" for every
// X ⊆ S, by maintaining a subset-sum table R over left-neighbourhoods,
// inverting it by inclusion-exclusion, and applying a left-neighbour
// correction step.
//
// Complexity: EnsureSize(k) costs O(V * C(d,k)) to extend R from the
// previous ensured size. Prepare(S) costs O(2^|S| * 2^|S|) for the
// uncorrected inversion plus O(|S| * d) for the correction loop, matching
// the bounds in spec.md §4.4.
//
// Concurrency: Oracle is not safe for concurrent use; one Oracle belongs
// to one single-threaded search engine instance (spec.md §5).
package nquery
