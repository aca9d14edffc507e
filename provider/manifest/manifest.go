// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package manifest loads configuration from a section of a project descriptor file.
//
// Manifest parses a TOML project descriptor (`pyproject.toml` by default)
// and returns the table under the configured section (`[tool.configs]` by default)
// as a nested map[string]any. Other sections of the descriptor are ignored.
//
// On the OS file system, the descriptor is searched in the working directory
// and up to WithDepth parent directories; the nearest one wins.
// A missing descriptor or section contributes an empty map.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/nil-go/stratum/internal"
	"github.com/nil-go/stratum/internal/maps"
)

// Manifest is a Loader that loads configuration from a section of a project descriptor.
//
// To create a new Manifest, call [New].
type Manifest struct {
	logger  *slog.Logger
	fs      fs.FS
	path    string
	section []string
	depth   int
}

// New creates a Manifest with the given descriptor path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) Manifest {
	if path == "" {
		panic("cannot create Manifest with empty path")
	}

	option := &options{
		path:    path,
		section: []string{"tool", "configs"},
		depth:   3, //nolint:mnd
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	return Manifest(*option)
}

func (m Manifest) Load() (map[string]any, error) {
	path := m.locate()
	content, err := internal.ReadFile(m.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Project descriptor does not exist.", "file", m.path)

			return make(map[string]any), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	var descriptor map[string]any
	if err := toml.Unmarshal(content, &descriptor); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	switch section := maps.Sub(descriptor, m.section).(type) {
	case nil:
		return make(map[string]any), nil
	case map[string]any:
		return section, nil
	default:
		return nil, fmt.Errorf("%w: [%s] in %s", errNotTable, strings.Join(m.section, "."), path)
	}
}

// locate returns the path of the nearest descriptor.
// It falls back to the configured path if no descriptor is found.
func (m Manifest) locate() string {
	if m.fs != nil || filepath.IsAbs(m.path) {
		return m.path
	}

	dir, err := os.Getwd()
	if err != nil {
		return m.path
	}
	for i := 0; i <= m.depth; i++ {
		candidate := filepath.Join(dir, m.path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return m.path
}

func (m Manifest) String() string {
	return "manifest:" + m.path + "#" + strings.Join(m.section, ".")
}

var errNotTable = errors.New("section is not a table")
