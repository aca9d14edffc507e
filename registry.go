// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/nil-go/stratum/internal"
)

// Registry holds the active configuration instance and the type it was set with,
// so that Reload can build a fresh instance of the same type.
//
// To create a new Registry, call [NewRegistry].
// A Registry must not be copied after first use.
type Registry struct {
	nocopy internal.NoCopy[Registry]

	resolver     *Resolver
	resolverOnce sync.Once
	state        atomic.Pointer[state]
	mutex        sync.Mutex // serializes Set and Reload
	loaded       atomic.Pointer[loaded]

	// For reloading on change.
	onReloads      []func(Schema)
	onReloadsMutex sync.RWMutex
	watchOnce      sync.Once
}

type state struct {
	current    Schema
	boundType  reflect.Type
	resolution *resolution // nil if current was not loaded through the Registry
}

// loaded is the instance of the last successful Load, and how it was resolved.
type loaded struct {
	instance   Schema
	resolution *resolution
}

// NewRegistry creates a new Registry that reloads configuration through the given Resolver.
// A nil resolver is replaced by New().
func NewRegistry(resolver *Resolver) *Registry {
	if resolver == nil {
		resolver = New()
	}

	return &Registry{resolver: resolver}
}

// Load loads configuration onto the target through the Resolver of the Registry.
// It does not change the active configuration, call Set for that.
func (r *Registry) Load(target Schema) error {
	res, err := r.getResolver().load(target)
	if err != nil {
		return err
	}
	r.loaded.Store(&loaded{instance: target, resolution: res})

	return nil
}

// Set makes the instance the active configuration, and remembers its type for Reload.
// It calls the Customize of instance before it becomes visible to Get.
//
// This method is concurrency-safe, and the last writer wins.
// It panics if instance is not a non-nil pointer to struct.
func (r *Registry) Set(instance Schema) {
	r.nocopy.Check()

	typ := reflect.TypeOf(instance)
	if instance == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct ||
		reflect.ValueOf(instance).IsNil() {
		panic(fmt.Sprintf("cannot set %T as configuration, it must be a non-nil pointer to struct", instance))
	}

	var res *resolution
	if last := r.loaded.Load(); last != nil && last.instance == instance {
		res = last.resolution
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.set(instance, typ, res)
}

func (r *Registry) set(instance Schema, typ reflect.Type, res *resolution) {
	instance.Customize()
	r.state.Store(&state{current: instance, boundType: typ, resolution: res})
}

// Get returns the active configuration.
// It returns ErrNotSet if Set has never been called.
//
// This method is concurrency-safe and never blocks.
func (r *Registry) Get() (Schema, error) { //nolint:ireturn
	r.nocopy.Check()

	st := r.state.Load()
	if st == nil {
		return nil, ErrNotSet
	}

	return st.current, nil
}

// Reload builds a fresh instance of the type given to the last Set from all tiers,
// and makes it the active configuration as Set does.
// The previous instance is never modified, so callers holding it keep a stable view.
//
// It returns ErrReloadWithoutInit if Set has never been called.
// If loading fails, the active configuration is left unchanged.
//
// This method is concurrency-safe.
func (r *Registry) Reload() error {
	r.nocopy.Check()

	st := r.state.Load()
	if st == nil {
		return ErrReloadWithoutInit
	}

	// Build outside the lock as loaders may block on I/O.
	instance, _ := reflect.New(st.boundType.Elem()).Interface().(Schema)
	res, err := r.getResolver().load(instance)
	if err != nil {
		return fmt.Errorf("reload %s: %w", st.boundType, err)
	}

	r.mutex.Lock()
	r.set(instance, st.boundType, res)
	r.mutex.Unlock()
	r.getResolver().logger.Info("Configuration has been reloaded.", "type", st.boundType.String())

	r.onReloadsMutex.RLock()
	onReloads := r.onReloads
	r.onReloadsMutex.RUnlock()
	for _, onReload := range onReloads {
		onReload(instance)
	}

	return nil
}

// Explain provides information about how the active configuration resolved
// the value under the given path. It blurs sensitive information.
// An instance given to Set without loading it through the Registry has no explanation.
func (r *Registry) Explain(path string) string {
	var res *resolution
	if st := r.state.Load(); st != nil {
		res = st.resolution
	}

	return r.getResolver().explainResolution(path, res)
}

func (r *Registry) getResolver() *Resolver {
	r.resolverOnce.Do(func() {
		if r.resolver == nil {
			r.resolver = New()
		}
	})

	return r.resolver
}

// GetAs returns the active configuration of the Registry as T.
// It returns ErrNotSet if Set has never been called,
// or an error if the active configuration is not a T.
func GetAs[T Schema](registry *Registry) (T, error) { //nolint:ireturn
	var zero T

	current, err := registry.Get()
	if err != nil {
		return zero, err
	}
	instance, ok := current.(T)
	if !ok {
		return zero, fmt.Errorf("%w: active configuration is %T, not %T", errTypeMismatch, current, zero)
	}

	return instance, nil
}
