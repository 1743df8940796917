// Package skipcombs provides a lexicographic k-combination iterator that
// can skip entire families of combinations sharing a common prefix, used by
// the witness search engines (spec.md §4.6). VCEngine skips a prefix once it
// is known not to extend to a shattered set; the ladder, crown and biclique
// engines use the iterator without skipping.
//
// Complexity: constructing the iterator is O(n log n) (for the initial
// sort done by callers; the iterator itself does no sorting). Each Next
// call and each SkipPrefix call does O(k) work.
//
// Concurrency: Combinations is not safe for concurrent use; each instance
// is intended for use by a single search loop.
package skipcombs
