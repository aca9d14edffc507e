// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dotenv

import (
	"io/fs"
	"log/slog"
)

// WithFS provides the file system the file is read from.
// Files read from a fs.FS are not watched.
//
// By default, it reads from the OS file system.
func WithFS(fs fs.FS) Option {
	return func(options *options) {
		options.fs = fs
	}
}

// WithLogger provides the slog.Logger for Dotenv loader.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a Dotenv with specific options.
	Option  func(*options)
	options Dotenv
)
