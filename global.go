// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"context"
	"sync/atomic"
)

// Load loads configuration onto the target through the default Registry.
// It does not change the active configuration, call Set for that.
func Load(target Schema) error {
	return defaultRegistry.Load().Load(target)
}

// Set makes the instance the active configuration of the default Registry.
// It calls the Customize of instance before it becomes visible to Get.
func Set(instance Schema) {
	defaultRegistry.Load().Set(instance)
}

// Get returns the active configuration of the default Registry as T.
// It returns ErrNotSet if Set has never been called.
func Get[T Schema]() (T, error) { //nolint:ireturn
	return GetAs[T](defaultRegistry.Load())
}

// Reload rebuilds the active configuration of the default Registry from all tiers.
// It returns ErrReloadWithoutInit if Set has never been called.
func Reload() error {
	return defaultRegistry.Load().Reload()
}

// Explain provides information about how the default Registry
// resolved the value under the given path.
func Explain(path string) string {
	return defaultRegistry.Load().Explain(path)
}

// Watch watches the loaders of the default Registry and reloads on change.
// It blocks until ctx is done, or a watcher returns an error.
func Watch(ctx context.Context) error {
	return defaultRegistry.Load().Watch(ctx)
}

// SetDefault makes r the default Registry.
// After this call, the stratum package's top functions (e.g. stratum.Get)
// will read from r.
//
// It panics if r is nil.
func SetDefault(r *Registry) {
	if r == nil {
		panic("cannot set nil registry as default")
	}

	defaultRegistry.Store(r)
}

var defaultRegistry atomic.Pointer[Registry] //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	defaultRegistry.Store(&Registry{})
}
