// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !appengine && (darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

//nolint:cyclop,funlen
func watch(ctx context.Context, logger *slog.Logger, dir string, match func(string) bool, onChange func()) error {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skip watching as directory does not exist.", slog.String("dir", dir))

		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher for %s: %w", dir, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when closing watcher.",
				slog.String("dir", dir),
				slog.Any("error", e),
			)
		}
	}()

	// fsnotify watches the whole directory to pick up all events such as symlink changes.
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	var (
		lastEvent     string
		lastEventTime time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Some platforms fire the same event multiple times.
			if event.String() == lastEvent && time.Since(lastEventTime) < 5*time.Millisecond {
				continue
			}
			lastEvent = event.String()
			lastEventTime = time.Now()

			name := filepath.Clean(event.Name)
			if !match(name) {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				logger.LogAttrs(ctx, slog.LevelDebug, "File has been changed.", slog.String("file", name))
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when watching file.",
				slog.String("dir", dir),
				slog.Any("error", err),
			)

		case <-ctx.Done():
			return nil
		}
	}
}
