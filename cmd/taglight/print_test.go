package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltasrc/taglight/internal/filepaths"
)

func TestPrintFiles(t *testing.T) {
	t.Parallel()

	files := []fileEntry{
		{path: "a.yaml", content: []byte("a: 1\n")},
		{path: "b.yaml", content: []byte("b: &x hi\nc: *x\n")},
	}

	var sb strings.Builder

	err := printFiles(&sb, files, "monokai")
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "a.yaml")
	assert.Contains(t, out, "b.yaml")
	assert.Contains(t, out, "hi")
}

func TestPrintFiles_UnknownTheme_FallsBack(t *testing.T) {
	t.Parallel()

	files := []fileEntry{{path: "a.yaml", content: []byte("a: 1\n")}}

	var sb strings.Builder

	err := printFiles(&sb, files, "not-a-real-theme")
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "a")
}

// TestExpand_ZeroMatch exercises scenario S9: a glob matching zero files
// must report a clear error rather than silently producing no output.
func TestExpand_ZeroMatch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	_, err := filepaths.Expand(filepath.Join(tmpDir, "*.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching files")
}

func TestPrintFiles_ParseError_Continues(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ok.yaml"), []byte("a: 1\n"), 0o644))

	files := []fileEntry{
		{path: "bad.yaml", content: []byte("a: [1, 2\n")},
		{path: "ok.yaml", content: []byte("a: 1\n")},
	}

	var sb strings.Builder

	err := printFiles(&sb, files, "monokai")
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "ok.yaml")
}
