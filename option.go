// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"log/slog"
	"strconv"
)

// WithLoader replaces the loader of the given tier.
// A nil loader disables the tier.
//
// The loader of TierDefault is merged over the `default` struct tags,
// within the lowest tier.
//
// It panics if the tier is unknown.
func WithLoader(tier Tier, loader Loader) Option {
	if !tier.valid() {
		panic("cannot set loader for unknown tier " + strconv.Itoa(int(tier)))
	}

	return func(options *options) {
		options.loaders[tier] = loader
		options.configured[tier] = true
	}
}

// WithoutLoaders disables the loaders of all tiers.
// Struct tag defaults still apply.
// Loaders given by following WithLoader are kept.
func WithoutLoaders() Option {
	return func(options *options) {
		options.loaders = [tierCount]Loader{}
		for tier := range options.configured {
			options.configured[tier] = true
		}
	}
}

// WithDelimiter provides the delimiter that encodes nesting in the keys
// of flat tiers (secret files, environment, dotenv).
//
// The default delimiter is `__`, which makes key like `PARENT__CHILD__KEY`.
func WithDelimiter(delimiter string) Option {
	return func(options *options) {
		options.delimiter = delimiter
	}
}

// WithTagName provides the tag name that stratum reads for the field names.
//
// The default tag name is `stratum`.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// WithLogHandler provides the handler for logging.
//
// The handler also applies to the default loaders of all tiers.
// The default handler is slog.Default().Handler().
func WithLogHandler(handler slog.Handler) Option {
	return func(options *options) {
		options.logger = slog.New(handler)
	}
}

// Option configures a Resolver with specific options.
type Option func(*options)

type options Resolver
