// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import "context"

// Loader is the interface that wraps the basic Load method.
//
// Load loads configuration from one origin and returns it as a map[string]any.
// Structured origins return nested maps like `{parent: {child: {key: 1}}}`,
// while flat origins return keys joined with the nesting delimiter.
// An absent origin returns an empty map rather than an error.
type Loader interface {
	Load() (map[string]any, error)
}

// Watcher is the interface that wraps the Watch method.
//
// Watch watches the origin of configuration and calls onChange when it changes.
// It blocks until ctx is done, or the watching fails.
type Watcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Tier is the precedence of a configuration source.
// A higher tier overrides the values of lower tiers.
type Tier int

const (
	// TierDefault holds values already set on the target and `default` struct tags.
	TierDefault Tier = iota
	// TierDotenv holds a local `.env` file.
	TierDotenv
	// TierEnv holds OS environment variables.
	TierEnv
	// TierConfigFile holds a dedicated configuration file.
	TierConfigFile
	// TierManifest holds a section of a project descriptor.
	TierManifest
	// TierSecretFile holds mounted secret files.
	TierSecretFile

	tierCount = iota
)

func (t Tier) String() string {
	switch t {
	case TierDefault:
		return "default"
	case TierDotenv:
		return "dotenv"
	case TierEnv:
		return "env"
	case TierConfigFile:
		return "config-file"
	case TierManifest:
		return "manifest"
	case TierSecretFile:
		return "secret-file"
	default:
		return "unknown"
	}
}

// flat reports whether the tier encodes nesting in its keys with the delimiter.
func (t Tier) flat() bool {
	return t == TierDotenv || t == TierEnv || t == TierSecretFile
}

func (t Tier) valid() bool {
	return t >= TierDefault && t < tierCount
}
