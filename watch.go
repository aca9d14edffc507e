// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// OnReload registers a callback function that is executed with the new instance
// after each successful Reload.
//
// The onReload function must be non-blocking and usually completes instantly.
// If it requires a long time to complete, it should be executed in a separate goroutine.
//
// This method is concurrency-safe.
// It panics if onReload is nil.
func (r *Registry) OnReload(onReload func(Schema)) {
	if onReload == nil {
		panic("cannot register nil onReload")
	}

	r.onReloadsMutex.Lock()
	defer r.onReloadsMutex.Unlock()

	r.onReloads = append(r.onReloads, onReload)
}

// Watch watches the loaders that implement Watcher, and reloads the configuration
// when any of them changes. A failed reload is logged and keeps the active configuration.
// Changes before the first Set are ignored.
// It blocks until ctx is done, or a watcher returns an error.
//
// It only can be called once. Call after first has no effects.
// It panics if ctx is nil.
func (r *Registry) Watch(ctx context.Context) error { //nolint:funlen
	if ctx == nil {
		panic("cannot watch change with nil context")
	}
	r.nocopy.Check()

	resolver := r.getResolver()
	watchers := resolver.watchers()
	if len(watchers) == 0 {
		return nil
	}

	watched := true
	r.watchOnce.Do(func() {
		watched = false
	})
	if watched {
		resolver.logger.Warn("Registry has been watched, call Watch again has no effects.")

		return nil
	}

	// Changes are coalesced as a reload picks up all of them.
	changes := make(chan struct{}, 1)
	onChange := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		for {
			select {
			case <-changes:
				err := r.Reload()
				switch {
				case err == nil:
				case errors.Is(err, ErrNotSet):
					resolver.logger.DebugContext(ctx, "Skip reloading as configuration has not been set.")
				default:
					resolver.logger.WarnContext(ctx, "Could not reload configuration, keep the previous one.", "error", err)
				}
			case <-ctx.Done():
				return nil
			}
		}
	})
	for _, watcher := range watchers {
		group.Go(func() error {
			resolver.logger.DebugContext(ctx, "Watching configuration change.", "loader", watcher)
			if err := watcher.Watch(ctx, onChange); err != nil {
				return fmt.Errorf("watch configuration change: %w", err)
			}

			return nil
		})
	}

	return group.Wait() //nolint:wrapcheck
}
