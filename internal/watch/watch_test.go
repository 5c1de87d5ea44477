package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Success(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("# Title\n\ntext\n"), 0644))

	w, err := New(tempFile, "doc1")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.True(t, filepath.IsAbs(w.filePath))
	assert.NotNil(t, w.Updates())
	assert.NotNil(t, w.Errors())
	assert.Equal(t, defaultDebounce, w.debounce)
	assert.NotNil(t, w.prev)
}

func TestNew_NonExistentFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.xmd")

	w, err := New(missing, "doc1")
	require.Error(t, err)
	assert.Nil(t, w)
}

func TestNewWithDebounce_CustomWindow(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("text\n"), 0644))

	w, err := NewWithDebounce(tempFile, "doc1", 50*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.Equal(t, 50*time.Millisecond, w.debounce)
}

func TestWatcher_Updates_OnFileModification(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("# Title\n\none\n"), 0644))

	w, err := NewWithDebounce(tempFile, "doc1", 50*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, os.WriteFile(tempFile, []byte("# Title\n\ntwo\n"), 0644))

	select {
	case update := <-w.Updates():
		require.NotNil(t, update.Snapshot)
		assert.NotEmpty(t, update.Delta.Changed)
	case err := <-w.Errors():
		t.Fatalf("received error instead of update: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for file modification update")
	}
}

func TestWatcher_Updates_OnlyNewestReachesListener(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("# Title\n\none\n"), 0644))

	w, err := NewWithDebounce(tempFile, "doc1", 30*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	// Two settled changes, spaced well beyond the debounce window, land
	// back to back without the consumer reading in between. Only the
	// newest should be observable.
	require.NoError(t, os.WriteFile(tempFile, []byte("# Title\n\ntwo\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(tempFile, []byte("# Title\n\nthree\n"), 0644))
	time.Sleep(100 * time.Millisecond)

	select {
	case update := <-w.Updates():
		assert.Equal(t, 0, len(w.updates))
		_ = update
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for settled update")
	}

	select {
	case <-w.Updates():
		t.Fatal("expected no second buffered update")
	default:
	}
}

func TestWatcher_WatchesOnlyItsOwnFile(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("text\n"), 0644))

	w, err := NewWithDebounce(tempFile, "doc1", 50*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	time.Sleep(10 * time.Millisecond)

	other := filepath.Join(tempDir, "other.xmd")
	require.NoError(t, os.WriteFile(other, []byte("other\n"), 0644))

	select {
	case <-w.Updates():
		t.Fatal("received unexpected update for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Close_Idempotent(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("text\n"), 0644))

	w, err := New(tempFile, "doc1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.NoError(t, w.Close())
	}
}

func TestIsWatchedFile_MatchesAbsolutePathOnly(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "doc.xmd")
	require.NoError(t, os.WriteFile(tempFile, []byte("text\n"), 0644))

	w, err := New(tempFile, "doc1")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.True(t, w.isWatchedFile(tempFile))
	assert.False(t, w.isWatchedFile(filepath.Join(tempDir, "other.xmd")))
}
