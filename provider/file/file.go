// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file loads configuration from a dedicated configuration file.
//
// File loads a file with the given path and returns a nested map[string]any
// that is parsed with the unmarshal function chosen by the file extension:
// TOML for `.toml`, YAML for `.yaml`/`.yml`, and JSON for everything else.
// WithUnmarshal overrides the choice.
//
// A missing file contributes an empty map instead of an error.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nil-go/stratum/internal"
)

// File is a Loader that loads configuration from a file.
//
// To create a new File, call [New].
type File struct {
	logger    *slog.Logger
	fs        fs.FS
	path      string
	unmarshal func([]byte, any) error
}

// New creates a File with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) File {
	if path == "" {
		panic("cannot create File with empty path")
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
	if option.unmarshal == nil {
		option.unmarshal = unmarshalFor(path)
	}

	return File(*option)
}

func (f File) Load() (map[string]any, error) {
	bytes, err := internal.ReadFile(f.fs, f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("Config file does not exist.", "file", f.path)

			return make(map[string]any), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	var out map[string]any
	if err := f.unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", f.path, err)
	}
	if out == nil {
		out = make(map[string]any)
	}

	return out, nil
}

func (f File) String() string {
	return "file:" + f.path
}

func unmarshalFor(path string) func([]byte, any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return json.Unmarshal
	}
}
