package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vibecheck/internal/types"
)

func newTestWatcher(t *testing.T, path string) (*Watcher, chan types.Settings) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDefaultModel, "")

	ch := make(chan types.Settings, 16)
	w, err := NewWatcher(path, func(s types.Settings) { ch <- s }, zap.NewNop())
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w, ch
}

func TestWatcherDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, types.Settings{DefaultModel: "before"}))

	_, ch := newTestWatcher(t, path)

	require.NoError(t, Save(path, types.Settings{DefaultModel: "after"}))

	select {
	case got := <-ch:
		require.Equal(t, "after", got.DefaultModel)
	case <-time.After(5 * time.Second):
		t.Fatal("settings reload never delivered")
	}
}

func TestWatcherRapidSavesDeliverFinalState(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, types.Settings{DefaultModel: "v0"}))

	_, ch := newTestWatcher(t, path)

	// two saves inside one quiet window: the last on-disk state must arrive
	require.NoError(t, Save(path, types.Settings{DefaultModel: "v1"}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, Save(path, types.Settings{DefaultModel: "v2"}))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-ch:
			if got.DefaultModel == "v2" {
				return
			}
		case <-deadline:
			t.Fatal("final on-disk settings never delivered")
		}
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, Save(path, types.Settings{DefaultModel: "v0"}))

	_, ch := newTestWatcher(t, path)

	require.NoError(t, Save(filepath.Join(dir, "other.yaml"), types.Settings{DefaultModel: "noise"}))

	select {
	case got := <-ch:
		t.Fatalf("unexpected reload for unrelated file: %+v", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, types.Settings{DefaultModel: "v0"}))

	w, _ := newTestWatcher(t, path)
	w.Stop()
	w.Stop()
}
