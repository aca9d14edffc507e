// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package dotenv loads configuration from a local `.env` file.
//
// Dotenv parses the file with [godotenv] and returns a flat map[string]any
// keyed by variable name, the same shape as environment variables.
// Variables with empty value are treated as unset, and a missing file
// contributes an empty map.
//
// [godotenv]: https://github.com/joho/godotenv
package dotenv

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/nil-go/stratum/internal"
)

// Dotenv is a Loader that loads configuration from a `.env` file.
//
// To create a new Dotenv, call [New].
type Dotenv struct {
	logger *slog.Logger
	fs     fs.FS
	path   string
}

// New creates a Dotenv with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) Dotenv {
	if path == "" {
		panic("cannot create Dotenv with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	return Dotenv(*option)
}

func (d Dotenv) Load() (map[string]any, error) {
	content, err := internal.ReadFile(d.fs, d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.logger.Debug("Env file does not exist.", "file", d.path)

			return make(map[string]any), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	envs, err := godotenv.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", d.path, err)
	}

	values := make(map[string]any, len(envs))
	for key, value := range envs {
		if value == "" {
			continue
		}
		values[key] = value
	}

	return values, nil
}

func (d Dotenv) String() string {
	return "dotenv:" + d.path
}
