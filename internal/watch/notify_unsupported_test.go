// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build appengine || !(darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package watch_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/stratum/internal/watch"
)

func TestFile_unsupported(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	// Returns at once without waiting for ctx.
	require.NoError(t, watch.File(context.Background(), logger, "configs.toml", func() {
		t.Error("unexpected change")
	}))
	require.Contains(t, buf.String(), "Watching file change is not supported on this platform.")
}
