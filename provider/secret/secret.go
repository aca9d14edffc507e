// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package secret loads configuration from mounted secret files.
//
// Secret reads every regular file directly under a directory (`/run/secrets` for
// Docker secrets, or a Kubernetes secret volume) and returns a flat map[string]any
// where the file name is the key and the trimmed file content is the value.
// Nesting is encoded in the file names with a delimiter, e.g. a file named
// `POSTGRES__PASSWORD` is expanded by the resolver to `{POSTGRES: {PASSWORD: ...}}`.
//
// Hidden entries (e.g. `..data` of Kubernetes volumes) and sub-directories are skipped,
// files with empty content are treated as unset, and a missing directory contributes
// an empty map.
package secret

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nil-go/stratum/internal"
)

// Secret is a Loader that loads configuration from a directory of secret files.
//
// To create a new Secret, call [New].
type Secret struct {
	logger *slog.Logger
	fs     fs.FS
	dir    string
}

// New creates a Secret with the given directory and Option(s).
//
// It panics if the dir is empty.
func New(dir string, opts ...Option) Secret {
	if dir == "" {
		panic("cannot create Secret with empty dir")
	}

	option := &options{
		dir: dir,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	return Secret(*option)
}

func (s Secret) Load() (map[string]any, error) {
	entries, err := internal.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Secrets directory does not exist.", "dir", s.dir)

			return make(map[string]any), nil
		}

		return nil, fmt.Errorf("read dir: %w", err)
	}

	values := make(map[string]any, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || entry.IsDir() {
			continue
		}

		if entry.Type()&fs.ModeSymlink != 0 && s.isDir(name) {
			// Symlinks to directories show up as non-directory entries.
			continue
		}

		content, err := internal.ReadFile(s.fs, s.join(name))
		if err != nil {
			return nil, fmt.Errorf("read secret %s: %w", name, err)
		}

		if value := strings.TrimSpace(string(content)); value != "" {
			values[name] = value
		}
	}

	return values, nil
}

func (s Secret) join(name string) string {
	if s.fs != nil {
		return path.Join(s.dir, name)
	}

	return filepath.Join(s.dir, name)
}

func (s Secret) isDir(name string) bool {
	var (
		info fs.FileInfo
		err  error
	)
	if s.fs != nil {
		info, err = fs.Stat(s.fs, s.join(name))
	} else {
		info, err = os.Stat(s.join(name))
	}

	return err == nil && info.IsDir()
}

func (s Secret) String() string {
	return "secret:" + s.dir
}
