// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/stratum"
	"github.com/nil-go/stratum/provider/file"
)

var (
	_ stratum.Loader  = (*file.File)(nil)
	_ stratum.Watcher = (*file.File)(nil)
)

func TestFile_Load(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"configs.toml": {Data: []byte("DEBUG = true\n[POSTGRES]\nHOST = \"db\"\nPORT = 5432\n")},
		"configs.yaml": {Data: []byte("DEBUG: true\nPOSTGRES:\n  HOST: db\n")},
		"configs.json": {Data: []byte(`{"DEBUG": true, "POSTGRES": {"HOST": "db"}}`)},
		"empty.yaml":   {Data: []byte("")},
		"broken.toml":  {Data: []byte("DEBUG = ")},
	}

	testcases := []struct {
		description string
		path        string
		opts        []file.Option
		expected    map[string]any
		err         string
	}{
		{
			description: "toml",
			path:        "configs.toml",
			expected: map[string]any{
				"DEBUG":    true,
				"POSTGRES": map[string]any{"HOST": "db", "PORT": int64(5432)},
			},
		},
		{
			description: "yaml",
			path:        "configs.yaml",
			expected: map[string]any{
				"DEBUG":    true,
				"POSTGRES": map[string]any{"HOST": "db"},
			},
		},
		{
			description: "json",
			path:        "configs.json",
			expected: map[string]any{
				"DEBUG":    true,
				"POSTGRES": map[string]any{"HOST": "db"},
			},
		},
		{
			description: "empty file",
			path:        "empty.yaml",
			expected:    map[string]any{},
		},
		{
			description: "file not exist",
			path:        "not_found.toml",
			expected:    map[string]any{},
		},
		{
			description: "malformed file",
			path:        "broken.toml",
			err:         "unmarshal broken.toml: ",
		},
		{
			description: "unmarshal error",
			path:        "configs.json",
			opts: []file.Option{
				file.WithUnmarshal(func([]byte, any) error {
					return errors.New("unmarshal error")
				}),
			},
			err: "unmarshal configs.json: unmarshal error",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			opts := append([]file.Option{file.WithFS(fs)}, testcase.opts...)
			values, err := file.New(testcase.path, opts...).Load()
			if testcase.err != "" {
				require.ErrorContains(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
		})
	}
}

func TestFile_Watch(t *testing.T) {
	t.Parallel()

	temp, err := os.MkdirTemp("", "*") // t.TempDir() causes deadlock on macos.
	require.NoError(t, err)
	defer os.RemoveAll(temp)
	path := filepath.Join(temp, "configs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`DEBUG = false`), 0o600))

	loader := file.New(path)
	changed := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- loader.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()
	time.Sleep(time.Second) // wait for the watcher to start

	require.NoError(t, os.WriteFile(path, []byte(`DEBUG = true`), 0o600))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("change was not notified")
	}
	values, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, map[string]any{"DEBUG": true}, values)

	cancel()
	require.NoError(t, <-done)
}

func TestFile_Watch_fs(t *testing.T) {
	t.Parallel()

	err := file.New("configs.toml", file.WithFS(fstest.MapFS{})).Watch(context.Background(), func() {})
	require.NoError(t, err)
}

func TestFile_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "file:configs.toml", file.New("configs.toml").String())
}

func TestFile_New_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot create File with empty path", func() {
		file.New("")
	})
}
