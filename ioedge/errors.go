package ioedge

import "errors"

var (
	// ErrFileNotFound indicates the requested path does not exist or is a
	// directory.
	ErrFileNotFound = errors.New("ioedge: file does not exist or is a directory")

	// ErrBadExtension indicates a file extension other than .txt or
	// .txt.gz (spec.md §6 "the supported formats are .txt.gz and .txt").
	ErrBadExtension = errors.New("ioedge: unsupported file extension, expected .txt or .txt.gz")

	// ErrMalformedEdge indicates a non-comment, non-blank edge-list line
	// did not parse as exactly two whitespace-separated uint32 endpoints.
	ErrMalformedEdge = errors.New("ioedge: malformed edge line, expected two unsigned integers")

	// ErrMalformedVertex indicates a non-comment, non-blank
	// candidate-list line did not parse as a single uint32.
	ErrMalformedVertex = errors.New("ioedge: malformed vertex line, expected one unsigned integer")
)
