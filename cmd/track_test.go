package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zadoox/xmd/internal/changetrack"
	"github.com/zadoox/xmd/internal/xmderrs"
)

func writeTrackFiles(t *testing.T, original, next string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	origFile := filepath.Join(dir, "original.txt")
	nextFile := filepath.Join(dir, "next.txt")
	require.NoError(t, os.WriteFile(origFile, []byte(original), 0644))
	require.NoError(t, os.WriteFile(nextFile, []byte(next), 0644))

	return origFile, nextFile
}

func TestTrackCmd_PrintsHunks(t *testing.T) {
	origFile, nextFile := writeTrackFiles(t, "hello world", "hello there world")

	cmd := &TrackCmd{Original: origFile, Next: nextFile}
	out, err := captureStdout(t, cmd.Run)

	require.NoError(t, err)
	assert.Contains(t, out, "add")
}

func TestTrackCmd_Apply(t *testing.T) {
	origFile, nextFile := writeTrackFiles(t, "hello world", "hello there world")

	cmd := &TrackCmd{Original: origFile, Next: nextFile, AcceptAll: true, Apply: true}
	out, err := captureStdout(t, cmd.Run)

	require.NoError(t, err)
	assert.Contains(t, out, "hello there world")
}

func TestTrackCmd_ConflictingAcceptReject(t *testing.T) {
	origFile, nextFile := writeTrackFiles(t, "hello world", "hello there world")

	cmd := &TrackCmd{Original: origFile, Next: nextFile, Accept: []string{"h1"}, Reject: []string{"h1"}}
	_, err := captureStdout(t, cmd.Run)

	require.Error(t, err)
	assert.IsType(t, &xmderrs.ConflictingAcceptRejectError{}, err)
}

func TestTrackCmd_UnknownHunkID(t *testing.T) {
	origFile, nextFile := writeTrackFiles(t, "hello world", "hello there world")

	cmd := &TrackCmd{Original: origFile, Next: nextFile, Accept: []string{"no-such-hunk"}}
	_, err := captureStdout(t, cmd.Run)

	require.Error(t, err)
	assert.IsType(t, &xmderrs.UnknownHunkIDError{}, err)
}

func TestFormatSpan_ColorWrapsWithANSI(t *testing.T) {
	plain := formatSpan("x", false, ansiGreen)
	colored := formatSpan("x", true, ansiGreen)

	assert.Equal(t, `"x"`, plain)
	assert.Contains(t, colored, ansiGreen)
	assert.Contains(t, colored, ansiReset)
}

func TestPrintHunk_DoesNotPanicForEachType(t *testing.T) {
	for _, typ := range []changetrack.HunkType{changetrack.HunkAdd, changetrack.HunkRemove, "replace"} {
		h := changetrack.Hunk{ID: "h1", Type: typ, StartPosition: 0, EndPosition: 1, OriginalText: "a", NewText: "b"}
		assert.NotPanics(t, func() { printHunk(h, false) })
	}
}
