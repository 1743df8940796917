// Package ioedge loads edge lists and vertex-restriction lists from disk
// for the CLI driver (spec.md §6 external collaborators). Supported edge
// list formats are plain whitespace-separated ".txt" and gzip-compressed
// ".txt.gz", each line either blank, a "#"-prefixed comment, or exactly
// two unsigned integers naming an edge's endpoints, optionally followed by
// a "#" comment.
//
// Complexity: O(size of file) for both readers.
//
// Concurrency: stateless; safe to call concurrently on distinct paths.
package ioedge
