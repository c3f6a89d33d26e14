package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetouch-io/onetouch/internal/config"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("no watcher event")
	}
	return Event{}
}

func TestWatcherSettingsChanged(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, config.SaveYAML(path, map[string]int{"version": 1}))

	ev := waitEvent(t, w)
	assert.Equal(t, EventSettingsChanged, ev.Type)
	assert.Equal(t, path, ev.Path)

	require.NoError(t, os.Remove(path))
	ev = waitEvent(t, w)
	assert.Equal(t, EventSettingsRemoved, ev.Type)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DaemonFileName), []byte("port: 1\n"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %v", ev.Type)
	case <-time.After(3 * DebounceInterval):
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	path := filepath.Join(dir, config.SettingsFileName)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))
	}

	assert.Equal(t, EventSettingsChanged, waitEvent(t, w).Type)
	select {
	case ev := <-w.Events():
		t.Fatalf("burst produced a second event %v", ev.Type)
	case <-time.After(3 * DebounceInterval):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
}

func TestStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	// A change still being debounced when Stop runs must not panic or block.
	require.NoError(t, config.SaveYAML(filepath.Join(dir, config.SettingsFileName), map[string]int{"version": 1}))

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	w.Stop()
	w.Stop()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Events channel not closed after Stop")
	}
	time.Sleep(2 * DebounceInterval)
}
