package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Watch_ReportsNewPDF(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, _, err := w.Watch(ctx, dir, []string{".pdf"})
	require.NoError(t, err)

	path := filepath.Join(dir, "dropped.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	select {
	case got := <-files:
		assert.Equal(t, "dropped.pdf", filepath.Base(got))
		assert.True(t, filepath.IsAbs(got), "paths are reported absolute")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcher_Watch_IgnoresOtherExtensions(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, _, err := w.Watch(ctx, dir, []string{".pdf"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan.pdf"), []byte("%PDF"), 0644))

	select {
	case got := <-files:
		assert.Equal(t, "scan.pdf", filepath.Base(got),
			"non-matching extensions are filtered out")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcher_Watch_MissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	_, _, err = w.Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), []string{".pdf"})

	assert.Error(t, err)
}

func TestWatcher_Watch_StopsOnCancel(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	files, _, err := w.Watch(ctx, t.TempDir(), []string{".pdf"})
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-files:
		assert.False(t, ok, "files channel closes after cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, matches("/tmp/a.pdf", []string{".pdf"}))
	assert.True(t, matches("/tmp/A.PDF", []string{".pdf"}))
	assert.False(t, matches("/tmp/a.txt", []string{".pdf"}))
	assert.False(t, matches("/tmp/a", []string{".pdf"}))
}
