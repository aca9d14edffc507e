// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dotenv

import (
	"context"

	"github.com/nil-go/stratum/internal/watch"
)

// Watch calls onChange whenever the file is created, written or removed.
// It blocks until ctx is done. It returns immediately for files read from a fs.FS.
func (d Dotenv) Watch(ctx context.Context, onChange func()) error {
	if d.fs != nil {
		return nil
	}

	return watch.File(ctx, d.logger, d.path, onChange) //nolint:wrapcheck
}
