// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import (
	"slices"
	"strings"
)

// Expand converts flat keys like `PARENT__CHILD` into nested maps
// by splitting them with the given delimiter.
//
// Keys are inserted in sorted order, so `A` is inserted before `A__B`
// and the deeper key replaces the scalar when both are present.
// Keys with an empty segment (e.g. `A____B` or `__A`) are dropped.
func Expand(src map[string]any, delimiter string) map[string]any {
	values := make(map[string]any, len(src))
	if delimiter == "" {
		Merge(values, src)

		return values
	}

	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		paths := strings.Split(key, delimiter)
		if slices.Contains(paths, "") {
			continue
		}

		value := src[key]
		if m, ok := value.(map[string]any); ok {
			nested := make(map[string]any, len(m))
			Merge(nested, m)
			value = nested
		}
		Insert(values, paths, value)
	}

	return values
}
