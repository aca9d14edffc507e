// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package stratum

import (
	"encoding"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Schema is the interface that a configuration struct implements.
//
// Customize is called exactly once on every instance right before it becomes
// the active configuration of a Registry, to derive values across fields.
// Embed [Base] for a no-op implementation.
type Schema interface {
	Customize()
}

// Base provides the no-op Customize for schemas.
type Base struct{}

// Customize does nothing.
func (Base) Customize() {}

// field describes a field of schema: its key, the `default` and `required` tags,
// and the nested fields if the field is a struct.
type field struct {
	key        string
	index      int
	defaultVal *string
	required   bool
	fields     []field // for nested struct
	squash     bool    // for embedded struct
}

// describe returns the fields of the given struct type.
func describe(typ reflect.Type, tagName string) []field {
	fields := make([]field, 0, typ.NumField())
	for i := range typ.NumField() {
		structField := typ.Field(i)
		if !structField.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(structField.Tag.Get(tagName), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = structField.Name
		}

		fld := field{
			key:   name,
			index: i,
		}
		if def, ok := structField.Tag.Lookup("default"); ok {
			fld.defaultVal = &def
		}
		fld.required, _ = strconv.ParseBool(structField.Tag.Get("required"))
		if isNested(structField.Type) {
			fld.fields = describe(structField.Type, tagName)
			fld.squash = structField.Anonymous || strings.Contains(opts, "squash")
		}
		fields = append(fields, fld)
	}

	return fields
}

func isNested(typ reflect.Type) bool {
	return typ.Kind() == reflect.Struct &&
		!reflect.PointerTo(typ).Implements(reflect.TypeFor[encoding.TextUnmarshaler]())
}

// defaults returns the `default` tags of fields as a nested map,
// skipping fields that already have non-zero value on the target.
func defaults(fields []field, target reflect.Value) map[string]any {
	values := make(map[string]any)
	for _, fld := range fields {
		value := target.Field(fld.index)
		switch {
		case fld.fields != nil:
			nested := defaults(fld.fields, value)
			if fld.squash {
				for k, v := range nested {
					values[k] = v
				}
			} else if len(nested) > 0 {
				values[fld.key] = nested
			}
		case fld.defaultVal != nil && value.IsZero():
			values[fld.key] = *fld.defaultVal
		}
	}

	return values
}

// checkRequired returns a ValidationError for the first required field
// that is neither present in values nor set on the target.
func checkRequired(fields []field, values map[string]any, target reflect.Value, path []string) error {
	for _, fld := range fields {
		value := target.Field(fld.index)
		if fld.fields != nil {
			sub := values
			subPath := path
			if !fld.squash {
				sub, _ = values[fld.key].(map[string]any)
				subPath = append(slices.Clone(path), fld.key)
			}
			if err := checkRequired(fld.fields, sub, value, subPath); err != nil {
				return err
			}

			continue
		}

		if _, ok := values[fld.key]; !ok && fld.required && value.IsZero() {
			return &ValidationError{
				Path: strings.Join(append(slices.Clone(path), fld.key), pathDelimiter),
				Err:  errMissing,
			}
		}
	}

	return nil
}
