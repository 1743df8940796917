package ioedge_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/ioedge"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func writeGzFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	return path
}

func TestLoadEdgesPlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "g.txt", "# comment\n0 1\n1 2\n\n2 3 # trailing comment\n")

	edges, err := ioedge.LoadEdges(path)
	require.NoError(t, err)
	assert.Equal(t, []degraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, edges)
}

func TestLoadEdgesGzipped(t *testing.T) {
	dir := t.TempDir()
	path := writeGzFile(t, dir, "g.txt.gz", "0 1\n1 2\n")

	edges, err := ioedge.LoadEdges(path)
	require.NoError(t, err)
	assert.Equal(t, []degraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, edges)
}

func TestLoadEdgesRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "g.csv", "0 1\n")

	_, err := ioedge.LoadEdges(path)
	assert.ErrorIs(t, err, ioedge.ErrBadExtension)
}

func TestLoadEdgesRejectsMissingFile(t *testing.T) {
	_, err := ioedge.LoadEdges(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ioedge.ErrFileNotFound)
}

func TestLoadEdgesRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "g.txt", "0 1 2\n")

	_, err := ioedge.LoadEdges(path)
	assert.ErrorIs(t, err, ioedge.ErrMalformedEdge)
}

func TestLoadCandidates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cands.txt", "# restrict to these\n3\n1\n\n4\n")

	vertices, err := ioedge.LoadCandidates(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 1, 4}, vertices)
}
