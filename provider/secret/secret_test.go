// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package secret_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/stratum"
	"github.com/nil-go/stratum/provider/secret"
)

var (
	_ stratum.Loader  = (*secret.Secret)(nil)
	_ stratum.Watcher = (*secret.Secret)(nil)
)

func TestSecret_Load(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"secrets/POSTGRES__PASSWORD": {Data: []byte("hunter2\n")},
		"secrets/API_KEY":            {Data: []byte("  key  ")},
		"secrets/EMPTY":              {Data: []byte("\n")},
		"secrets/.hidden":            {Data: []byte("hidden")},
		"secrets/nested/KEY":         {Data: []byte("nested")},
	}

	testcases := []struct {
		description string
		dir         string
		expected    map[string]any
	}{
		{
			description: "secrets",
			dir:         "secrets",
			expected: map[string]any{
				"POSTGRES__PASSWORD": "hunter2",
				"API_KEY":            "key",
			},
		},
		{
			description: "dir not exist",
			dir:         "not_found",
			expected:    map[string]any{},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			values, err := secret.New(testcase.dir, secret.WithFS(fs)).Load()
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
		})
	}
}

func TestSecret_Load_symlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := filepath.Join(dir, "..2026_10_19")
	require.NoError(t, os.Mkdir(data, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(data, "TOKEN"), []byte("t0k3n"), 0o600))
	require.NoError(t, os.Symlink(data, filepath.Join(dir, "..data")))
	require.NoError(t, os.Symlink(filepath.Join("..data", "TOKEN"), filepath.Join(dir, "TOKEN")))
	require.NoError(t, os.Symlink(data, filepath.Join(dir, "linked")))

	values, err := secret.New(dir).Load()
	require.NoError(t, err)
	require.Equal(t, map[string]any{"TOKEN": "t0k3n"}, values)
}

func TestSecret_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "secret:/run/secrets", secret.New("/run/secrets").String())
}
