// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"io/fs"
	"os"
)

// ReadFile reads the named file from fsys, or from the OS file system if fsys is nil.
// A missing file is reported with an error matching fs.ErrNotExist in both cases.
func ReadFile(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return os.ReadFile(path) //nolint:wrapcheck
	}

	return fs.ReadFile(fsys, path) //nolint:wrapcheck
}

// ReadDir reads the named directory from fsys, or from the OS file system if fsys is nil.
func ReadDir(fsys fs.FS, path string) ([]fs.DirEntry, error) {
	if fsys == nil {
		return os.ReadDir(path) //nolint:wrapcheck
	}

	return fs.ReadDir(fsys, path) //nolint:wrapcheck
}
