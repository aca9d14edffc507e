// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/stratum/internal/maps"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		dst         map[string]any
		keys        []string
		value       any
		expected    map[string]any
	}{
		{
			description: "creates tables on the way",
			dst:         map[string]any{},
			keys:        []string{"POSTGRES", "POOL", "SIZE"},
			value:       "10",
			expected: map[string]any{
				"POSTGRES": map[string]any{"POOL": map[string]any{"SIZE": "10"}},
			},
		},
		{
			description: "ignores empty keys",
			dst:         map[string]any{"DEBUG": "true"},
			value:       "false",
			expected:    map[string]any{"DEBUG": "true"},
		},
		{
			description: "keeps siblings",
			dst:         map[string]any{"POSTGRES": map[string]any{"HOST": "db"}},
			keys:        []string{"POSTGRES", "PORT"},
			value:       "5432",
			expected:    map[string]any{"POSTGRES": map[string]any{"HOST": "db", "PORT": "5432"}},
		},
		{
			description: "replaces leaf",
			dst:         map[string]any{"POSTGRES": map[string]any{"HOST": "db"}},
			keys:        []string{"POSTGRES", "HOST"},
			value:       "replica",
			expected:    map[string]any{"POSTGRES": map[string]any{"HOST": "replica"}},
		},
		{
			description: "replaces scalar on the way",
			dst:         map[string]any{"POSTGRES": "postgres://db"},
			keys:        []string{"POSTGRES", "HOST"},
			value:       "db",
			expected:    map[string]any{"POSTGRES": map[string]any{"HOST": "db"}},
		},
		{
			description: "replaces table with scalar",
			dst:         map[string]any{"POSTGRES": map[string]any{"HOST": "db"}},
			keys:        []string{"POSTGRES"},
			value:       "postgres://db",
			expected:    map[string]any{"POSTGRES": "postgres://db"},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			maps.Insert(testcase.dst, testcase.keys, testcase.value)
			require.Equal(t, testcase.expected, testcase.dst)
		})
	}
}
