// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package secret

import (
	"context"

	"github.com/nil-go/stratum/internal/watch"
)

// Watch calls onChange whenever an entry in the secrets directory changes.
// It blocks until ctx is done. It returns immediately for secrets read from a fs.FS.
func (s Secret) Watch(ctx context.Context, onChange func()) error {
	if s.fs != nil {
		return nil
	}

	return watch.Dir(ctx, s.logger, s.dir, onChange) //nolint:wrapcheck
}
