// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// materialize decodes the merged values onto the target and validates
// the `validate` struct tags of the result.
func (r *Resolver) materialize(values map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       decodeHook,
			TagName:          r.tagName,
			Squash:           true,
			// Keys are case-sensitive.
			MatchName: func(mapKey, fieldName string) bool {
				return mapKey == fieldName
			},
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return &ValidationError{Path: decodePath(err), Err: err}
	}

	if err := r.validate.Struct(target); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			// Namespace is prefixed with the struct name, e.g. `Config.POSTGRES.PORT`.
			_, path, _ := strings.Cut(errs[0].Namespace(), ".")

			return &ValidationError{Path: path, Err: err}
		}

		return &ValidationError{Err: err}
	}

	return nil
}

// decodePath returns the field path quoted in the first decoding error,
// e.g. `POSTGRES.PORT` from "* 'POSTGRES.PORT' expected type 'int'".
func decodePath(err error) string {
	_, quoted, found := strings.Cut(err.Error(), "'")
	if !found {
		return ""
	}
	path, _, _ := strings.Cut(quoted, "'")

	return path
}

//nolint:gochecknoglobals
var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
