package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "captionforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *PipelineConfig, 1)
	go func() {
		_ = Watch(ctx, path, func(cfg *PipelineConfig) {
			reloaded <- cfg
		})
	}()

	// Give the watcher a moment to register its inotify hook before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9100\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 9100, cfg.Server.Port)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatchSkipsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "captionforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *PipelineConfig, 1)
	go func() {
		_ = Watch(ctx, path, func(cfg *PipelineConfig) {
			reloaded <- cfg
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("onReload should not fire for an invalid config")
	case <-time.After(500 * time.Millisecond):
	}
}
