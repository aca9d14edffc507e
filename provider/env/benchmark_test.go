// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/stratum/provider/env"
)

func BenchmarkLoad(b *testing.B) {
	b.Setenv("BENCH__KEY", "v")
	loader := env.New()
	b.ResetTimer()

	var (
		values map[string]any
		err    error
	)
	for i := 0; i < b.N; i++ {
		values, err = loader.Load()
	}
	b.StopTimer()

	require.NoError(b, err)
	require.Equal(b, "v", values["BENCH__KEY"])
}
