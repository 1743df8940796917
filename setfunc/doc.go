// Package setfunc implements the two set-function representations the
// N-query oracle is built on (spec.md §4.2–§4.3):
//
//   - SetFunc: a sparse, hash-indexed map from sorted subsets of the full
//     vertex universe to int32 counts. Used to accumulate R, the
//     left-neighborhood subset-count table.
//   - SmallSetFunc: a sparse, bitmask-indexed map over a universe of at
//     most 128 elements. Supports an in-place downward Möbius transform
//     and the ladder/crown/biclique pattern predicates; ladder and crown
//     are recursive bitmask traversals, biclique is a single lookup of the
//     full-universe key (spec.md §9).
//
// Both representations canonicalize their keys (sort + dedup for SetFunc,
// bitmask encoding for SmallSetFunc) so equal sets always collide to the
// same slot regardless of how a caller ordered them.
package setfunc
