// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package watch notifies changes of files and directories on the OS file system.
// On platforms without fsnotify support, watching logs a warning and returns at once.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
)

// File calls onChange whenever the file at the given path is created, written or removed.
// It blocks until ctx is done, and returns nil immediately if the parent directory does not exist.
func File(ctx context.Context, logger *slog.Logger, path string, onChange func()) error {
	path = filepath.Clean(path)
	realPath := path
	// Resolve symlinks so that changes to symlinks (e.g. mounted secrets) can be detected.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		realPath = filepath.Clean(resolved)
	}

	return watch(ctx, logger, filepath.Dir(path), func(name string) bool {
		return name == path || name == realPath
	}, onChange)
}

// Dir calls onChange whenever any entry directly under the given directory changes.
// It blocks until ctx is done, and returns nil immediately if the directory does not exist.
func Dir(ctx context.Context, logger *slog.Logger, dir string, onChange func()) error {
	dir = filepath.Clean(dir)

	return watch(ctx, logger, dir, func(name string) bool {
		return filepath.Dir(name) == dir
	}, onChange)
}
