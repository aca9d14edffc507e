// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/nil-go/stratum/internal/credential"
	"github.com/nil-go/stratum/internal/maps"
	"github.com/nil-go/stratum/provider/dotenv"
	"github.com/nil-go/stratum/provider/env"
	"github.com/nil-go/stratum/provider/file"
	"github.com/nil-go/stratum/provider/manifest"
	"github.com/nil-go/stratum/provider/secret"
)

// Resolver loads configuration from the loaders of all tiers,
// merges it by precedence and materializes it onto a schema.
//
// To create a new Resolver, call [New].
type Resolver struct {
	// Options.
	logger    *slog.Logger
	delimiter string
	tagName   string
	loaders   [tierCount]Loader

	// Tiers given by WithLoader or WithoutLoaders keep their loaders.
	configured [tierCount]bool

	validate *validator.Validate

	// The last resolution for Explain.
	last atomic.Pointer[resolution]
}

type resolution struct {
	sources []Source
	values  map[string]any
}

// New creates a new Resolver with the given Option(s).
//
// Without options, it loads from:
//   - TierSecretFile: files under `/run/secrets`,
//   - TierManifest: `[tool.configs]` of the nearest `pyproject.toml`,
//   - TierConfigFile: `configs.toml`,
//   - TierEnv: environment variables,
//   - TierDotenv: `.env`,
//
// and each of them is skipped if absent.
func New(opts ...Option) *Resolver {
	option := &options{
		delimiter: "__",
		tagName:   "stratum",
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	defaultLoaders := [tierCount]func() Loader{
		TierDotenv:     func() Loader { return dotenv.New(".env", dotenv.WithLogger(option.logger)) },
		TierEnv:        func() Loader { return env.New() },
		TierConfigFile: func() Loader { return file.New("configs.toml", file.WithLogger(option.logger)) },
		TierManifest:   func() Loader { return manifest.New("pyproject.toml", manifest.WithLogger(option.logger)) },
		TierSecretFile: func() Loader { return secret.New("/run/secrets", secret.WithLogger(option.logger)) },
	}
	for tier, newLoader := range defaultLoaders {
		if newLoader != nil && !option.configured[tier] {
			option.loaders[tier] = newLoader()
		}
	}

	resolver := (*Resolver)(option)
	resolver.validate = validator.New(validator.WithRequiredStructEnabled())
	resolver.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get(resolver.tagName), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})

	return resolver
}

// Load loads configuration from all tiers and materializes it onto the target,
// which must be a non-nil pointer to struct.
//
// Fields absent from every tier keep the value already set on the target,
// or the value of the `default` struct tag if the target has zero value.
// It returns a *SourceError if a loader fails, or a *ValidationError if
// a required field is missing or a value cannot be converted to its type.
// The target could be partially written when it returns an error.
//
// This method is concurrency-safe as long as the target is not shared.
func (r *Resolver) Load(target Schema) error {
	_, err := r.load(target)

	return err
}

func (r *Resolver) load(target Schema) (*resolution, error) {
	value := reflect.ValueOf(target)
	if target == nil || value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", errNotStructPointer, target)
	}
	fields := describe(value.Elem().Type(), r.tagName)

	sources, err := r.fetch(fields, value.Elem())
	if err != nil {
		return nil, err
	}
	values := Merge(r.delimiter, sources...)

	if err := checkRequired(fields, values, value.Elem(), nil); err != nil {
		return nil, err
	}
	if err := r.materialize(values, target); err != nil {
		return nil, err
	}

	last := &resolution{sources: sources, values: values}
	r.last.Store(last)
	r.logger.Debug("Configuration has been loaded.", "type", value.Type().String())

	return last, nil
}

func (r *Resolver) fetch(fields []field, target reflect.Value) ([]Source, error) {
	sources := make([]Source, 0, tierCount+1)
	sources = append(sources, Source{Tier: TierDefault, Values: defaults(fields, target)})
	for tier, loader := range r.loaders {
		if loader == nil {
			continue
		}

		values, err := loader.Load()
		if err != nil {
			return nil, &SourceError{Tier: Tier(tier), Loader: loader, Err: err}
		}
		sources = append(sources, Source{Tier: Tier(tier), Loader: loader, Values: values})
	}

	return sources, nil
}

// Tree loads configuration from all tiers and returns the merged nested map
// without materializing it onto any schema.
func (r *Resolver) Tree() (map[string]any, error) {
	sources, err := r.fetch(nil, reflect.Value{})
	if err != nil {
		return nil, err
	}
	values := Merge(r.delimiter, sources...)
	r.last.Store(&resolution{sources: sources, values: values})

	return values, nil
}

func (r *Resolver) watchers() []Watcher {
	var watchers []Watcher
	for _, loader := range r.loaders {
		if watcher, ok := loader.(Watcher); ok {
			watchers = append(watchers, watcher)
		}
	}

	return watchers
}

// Explain provides information about how the last Load resolved the value
// under the given path from tiers. It blurs sensitive information.
// The path is case-sensitive and delimited by `.`.
func (r *Resolver) Explain(path string) string {
	return r.explainResolution(path, r.last.Load())
}

func (r *Resolver) explainResolution(path string, res *resolution) string {
	if res == nil {
		return path + " has no configuration.\n\n"
	}

	explanation := &strings.Builder{}
	r.explain(explanation, path, maps.Sub(res.values, split(path)), res.sources)

	return explanation.String()
}

func (r *Resolver) explain(explanation *strings.Builder, path string, value any, sources []Source) {
	if values, ok := value.(map[string]any); ok {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			child := key
			if path != "" {
				child = path + pathDelimiter + key
			}
			r.explain(explanation, child, values[key], sources)
		}

		return
	}

	type sourceValue struct {
		source Source
		value  any
	}
	var contributors []sourceValue
	for _, source := range sources {
		if v := maps.Sub(source.expand(r.delimiter), split(path)); v != nil {
			contributors = append(contributors, sourceValue{source, v})
		}
	}
	// Highest tier first. Later sources in the same tier win.
	slices.Reverse(contributors)
	slices.SortStableFunc(contributors, func(a, b sourceValue) int {
		return int(b.source.Tier - a.source.Tier)
	})

	if len(contributors) == 0 {
		explanation.WriteString(path)
		explanation.WriteString(" has no configuration.\n\n")

		return
	}
	explanation.WriteString(path)
	explanation.WriteString(" has value[")
	explanation.WriteString(credential.Blur(path, contributors[0].value))
	explanation.WriteString("] that is loaded by ")
	explanation.WriteString(contributors[0].source.String())
	explanation.WriteString(".\n")
	if len(contributors) > 1 {
		explanation.WriteString("Here are other value(loader)s:\n")
		for _, contributor := range contributors[1:] {
			explanation.WriteString("  - ")
			explanation.WriteString(credential.Blur(path, contributor.value))
			explanation.WriteString("(")
			explanation.WriteString(contributor.source.String())
			explanation.WriteString(")\n")
		}
	}
	explanation.WriteString("\n")
}

const pathDelimiter = "."

func split(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, pathDelimiter)
}

func loaderName(loader Loader) string {
	if stringer, ok := loader.(fmt.Stringer); ok {
		return stringer.String()
	}

	return reflect.TypeOf(loader).String()
}

var errNotStructPointer = errors.New("target must be a non-nil pointer to struct")
