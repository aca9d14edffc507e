// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package manifest

import (
	"io/fs"
	"log/slog"
)

// WithSection provides the keys of the table that holds configuration.
//
// The default section is `tool.configs`.
func WithSection(keys ...string) Option {
	return func(options *options) {
		options.section = keys
	}
}

// WithDepth provides how many parent directories of the working directory
// are searched for the descriptor. It has no effect with WithFS.
//
// The default depth is 3.
func WithDepth(depth int) Option {
	return func(options *options) {
		options.depth = depth
	}
}

// WithFS provides the file system the descriptor is read from.
// Files read from a fs.FS are not watched.
//
// By default, it reads from the OS file system.
func WithFS(fs fs.FS) Option {
	return func(options *options) {
		options.fs = fs
	}
}

// WithLogger provides the slog.Logger for Manifest loader.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a Manifest with specific options.
	Option  func(*options)
	options Manifest
)
