// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads configuration from environment variables.
//
// Env loads all environment variables and returns them as a flat map[string]any
// keyed by variable name. Nesting is encoded in the names with a delimiter
// (`__` by default) and expanded by the resolver, e.g. `POSTGRES__HOST=db`
// lands at the same path as `{POSTGRES: {HOST: "db"}}` from a file.
// The environment variables with empty value are treated as unset.
//
// WithPrefix loads only the variables whose names start with the prefix,
// and strips the prefix from the loaded keys.
package env

import (
	"os"
	"strings"
)

// Env is a Loader that loads configuration from environment variables.
//
// To create a new Env, call [New].
type Env struct {
	_      [0]func() // Ensure it's incomparable.
	prefix string
}

// New creates an Env with the given Option(s).
func New(opts ...Option) Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	return Env(*option)
}

func (e Env) Load() (map[string]any, error) {
	values := make(map[string]any)
	for _, env := range os.Environ() {
		key, value, _ := strings.Cut(env, "=")
		if value == "" {
			// The environment variable with empty value is treated as unset.
			continue
		}
		if e.prefix != "" {
			var ok bool
			if key, ok = strings.CutPrefix(key, e.prefix); !ok || key == "" {
				continue
			}
		}
		values[key] = value
	}

	return values, nil
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
