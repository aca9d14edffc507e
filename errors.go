// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSet is returned when the Registry is read before any configuration was set.
	ErrNotSet = errors.New("configuration has not been set")
	// ErrReloadWithoutInit is returned when the Registry is reloaded before any configuration was set.
	// It also matches ErrNotSet.
	ErrReloadWithoutInit = fmt.Errorf("cannot reload before set: %w", ErrNotSet)

	errMissing      = errors.New("required but missing")
	errTypeMismatch = errors.New("type mismatch")
)

// ValidationError is returned when the merged configuration cannot be materialized
// onto the schema, because a required field is missing or a value cannot be
// converted to the declared type.
type ValidationError struct {
	// Path is the delimited path of the offending field, if known.
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "validate: " + e.Err.Error()
	}

	return "validate " + e.Path + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SourceError is returned when a Loader fails to load present but unreadable configuration.
// An absent origin is not an error.
type SourceError struct {
	Tier   Tier
	Loader Loader
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("load %s from %s: %v", e.Tier, loaderName(e.Loader), e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
