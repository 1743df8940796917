package ioedge

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcdim/degraph"
)

// LoadEdges reads an edge list from path. The extension selects the
// decoder: ".txt" is read as plain text, ".txt.gz" is gunzipped first.
// Any other extension, or a missing/directory path, is rejected
// (spec.md §6).
func LoadEdges(path string) ([]degraph.Edge, error) {
	r, err := openEdgeSource(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var edges []degraph.Edge
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields, ok := splitDataLine(scanner.Text())
		if !ok {
			continue
		}
		if len(fields) != 2 {
			return nil, ErrMalformedEdge
		}

		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, ErrMalformedEdge
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, ErrMalformedEdge
		}

		edges = append(edges, degraph.Edge{U: uint32(u), V: uint32(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

// LoadCandidates reads a newline-separated vertex-restriction list: one
// unsigned integer per non-blank, non-comment line.
func LoadCandidates(path string) ([]uint32, error) {
	r, err := openEdgeSource(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var vertices []uint32
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields, ok := splitDataLine(scanner.Text())
		if !ok {
			continue
		}
		if len(fields) != 1 {
			return nil, ErrMalformedVertex
		}

		v, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, ErrMalformedVertex
		}
		vertices = append(vertices, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return vertices, nil
}

// splitDataLine trims and comment-strips line, returning its
// whitespace-separated fields. The second return is false for lines that
// carry no data (blank, or comment-only).
func splitDataLine(line string) ([]string, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	return strings.Fields(line), true
}

// openEdgeSource validates path and extension, then returns a ReadCloser
// yielding plain-text content regardless of whether path is gzipped.
func openEdgeSource(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrFileNotFound
	}

	switch {
	case strings.HasSuffix(path, ".txt"):
		return f, nil
	case strings.HasSuffix(path, ".txt.gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()

			return nil, err
		}

		return gzipReadCloser{gz: gz, f: f}, nil
	default:
		f.Close()

		return nil, ErrBadExtension
	}
}

// gzipReadCloser closes both the gzip.Reader and the underlying file.
type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}

	return fErr
}
