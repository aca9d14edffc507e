// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"cmp"
	"slices"

	"github.com/nil-go/stratum/internal/maps"
)

// Source is the configuration loaded from one Loader in one resolution.
type Source struct {
	Tier Tier
	// Loader is nil for the struct tag defaults.
	Loader Loader
	Values map[string]any
}

// Merge merges the sources into one nested map by their tiers,
// so a source in a higher tier overrides the same leaf in lower tiers.
// The sources in the same tier take precedence in the given order, later ones win.
//
// The keys of flat tiers are split by the delimiter before merging,
// so `PARENT__CHILD` lands at the same path as `{PARENT: {CHILD: ...}}`.
// It returns an empty map if no source is given.
func Merge(delimiter string, sources ...Source) map[string]any {
	sorted := slices.Clone(sources)
	slices.SortStableFunc(sorted, func(a, b Source) int {
		return cmp.Compare(a.Tier, b.Tier)
	})

	values := make(map[string]any)
	for _, source := range sorted {
		maps.Merge(values, source.expand(delimiter))
	}

	return values
}

func (s Source) expand(delimiter string) map[string]any {
	if !s.Tier.flat() {
		return s.Values
	}

	return maps.Expand(s.Values, delimiter)
}

func (s Source) String() string {
	if s.Loader == nil {
		return s.Tier.String()
	}

	return s.Tier.String() + "[" + loaderName(s.Loader) + "]"
}
