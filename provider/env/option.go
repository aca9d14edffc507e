// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

// WithPrefix provides the prefix used when loading environment variables.
// Only environment variables with names that start with the prefix will be loaded,
// and the prefix is removed from the loaded keys.
//
// For example, with the prefix "APP_", the variable "APP_DEBUG" is loaded as "DEBUG".
// By default, it has no prefix which loads all environment variables.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

type (
	// Option configures an Env with specific options.
	Option  func(*options)
	options Env
)
