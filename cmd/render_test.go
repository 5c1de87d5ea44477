package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zadoox/xmd/internal/xmderrs"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	return buf.String(), runErr
}

func TestDocumentIDFromPath(t *testing.T) {
	assert.Equal(t, "doc", documentIDFromPath("/tmp/doc.xmd"))
	assert.Equal(t, "notes", documentIDFromPath("notes.xmd"))
}

func TestRenderCmd_HTML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.xmd")
	require.NoError(t, os.WriteFile(file, []byte("# Title\n\ntext\n"), 0644))

	cmd := &RenderCmd{File: file, Format: "html"}
	out, err := captureStdout(t, cmd.Run)

	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Title</h2>")
}

func TestRenderCmd_Latex(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.xmd")
	require.NoError(t, os.WriteFile(file, []byte("# Title\n\ntext\n"), 0644))

	cmd := &RenderCmd{File: file, Format: "latex"}
	out, err := captureStdout(t, cmd.Run)

	require.NoError(t, err)
	assert.Contains(t, out, `\section{Title}`)
}

func TestRenderCmd_LatexFragment(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.xmd")
	require.NoError(t, os.WriteFile(file, []byte("text\n"), 0644))

	cmd := &RenderCmd{File: file, Format: "latex-fragment"}
	out, err := captureStdout(t, cmd.Run)

	require.NoError(t, err)
	assert.NotContains(t, out, `\documentclass`)
}

func TestRenderCmd_MissingFile(t *testing.T) {
	cmd := &RenderCmd{File: filepath.Join(t.TempDir(), "missing.xmd"), Format: "html"}
	_, err := captureStdout(t, cmd.Run)

	require.Error(t, err)
	assert.IsType(t, &xmderrs.SourceFileReadError{}, err)
}
