package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"captionforge/pkg/logger"
)

// Watch reloads path on every write or create event and invokes onReload
// with the freshly validated config; a reload that fails to load or validate
// is logged and skipped. The whole config is passed to onReload, and which of
// its fields take effect is up to the callback. Watch blocks until ctx is
// canceled.
func Watch(ctx context.Context, path string, onReload func(*PipelineConfig)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				logger.Warn("config: reload failed, keeping previous config", "error", err)
				continue
			}
			logger.Info("config: reloaded", "path", path)
			onReload(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config: watcher error", "error", err)
		}
	}
}
