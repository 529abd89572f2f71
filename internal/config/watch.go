package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the settings file at path whenever it changes and passes
// the result to onChange. Reload failures are logged and the previous
// settings stay in effect. Watch blocks until ctx is done.
//
// The containing directory is watched rather than the file itself, so
// saves that replace the file by rename are seen.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Editor)) error {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "path", abs, "err", err)

		case <-fire:
			fire = nil
			cfg, err := Load(abs)
			if err != nil {
				logger.Warn("config reload failed", "path", abs, "err", err)
				continue
			}
			logger.Info("config reloaded", "path", abs)
			onChange(cfg)
		}
	}
}
