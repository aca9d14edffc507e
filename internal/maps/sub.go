// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Sub returns the value under the given path, or nil if the path does not exist.
// An empty path returns the values itself.
func Sub(values map[string]any, path []string) any {
	if len(path) == 0 || len(path) == 1 && path[0] == "" {
		return values
	}

	value, ok := values[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return value
	}

	if mp, ok := value.(map[string]any); ok {
		return Sub(mp, path[1:])
	}

	return nil
}
