package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWatcher_NotifiesOnWrite tests that a settled write triggers the callback
func TestWatcher_NotifiesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documents": []}`), 0600))

	changed := make(chan struct{}, 1)
	watcher, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	watcher.debounce = 50 * time.Millisecond

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"documents": [ ]}`), 0600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}
}

// TestWatcher_IgnoresSiblingFiles tests that unrelated files do not notify
func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documents": []}`), 0600))

	changed := make(chan struct{}, 1)
	watcher, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	watcher.debounce = 50 * time.Millisecond

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unrelated"), 0600))

	select {
	case <-changed:
		t.Fatal("unexpected notification for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

// TestWatcher_StopIsIdempotent tests repeated Stop calls
func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documents": []}`), 0600))

	watcher, err := NewWatcher(path, func() {})
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))

	watcher.Stop()
	assert.NotPanics(t, func() { watcher.Stop() })
}

// TestWatcher_StartTwice tests that a second Start is a no-op
func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documents": []}`), 0600))

	watcher, err := NewWatcher(path, func() {})
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	assert.NoError(t, watcher.Start(context.Background()))
}
