// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build appengine || !(darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package watch

import (
	"context"
	"log/slog"
	"runtime"
)

func watch(ctx context.Context, logger *slog.Logger, dir string, _ func(string) bool, _ func()) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(ctx, slog.LevelWarn,
		"Watching file change is not supported on this platform.",
		slog.String("dir", dir),
		slog.String("os", runtime.GOOS),
	)

	return nil
}
