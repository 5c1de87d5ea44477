package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLatexCmd_RoundTripsToXMD(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.tex")
	require.NoError(t, os.WriteFile(file, []byte("\\section{Intro}\nhello\n"), 0644))

	cmd := &FromLatexCmd{File: file}
	out, err := captureStdout(t, cmd.Run)

	require.NoError(t, err)
	assert.Contains(t, out, "# Intro")
	assert.Contains(t, out, "hello")
}

func TestFromLatexCmd_MissingFile(t *testing.T) {
	cmd := &FromLatexCmd{File: filepath.Join(t.TempDir(), "missing.tex")}
	_, err := captureStdout(t, cmd.Run)

	require.Error(t, err)
}
