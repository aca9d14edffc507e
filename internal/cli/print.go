// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPrintCommand(settings *settings) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			resolver, _, err := settings.resolver(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			values, err := resolver.Tree()
			if err != nil {
				return err //nolint:wrapcheck
			}

			return encode(cmd.OutOrStdout(), format, values)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")

	return cmd
}

var errUnknownFormat = errors.New("unknown format")

func checkFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func encode(w io.Writer, format string, values map[string]any) error {
	if values == nil {
		values = map[string]any{}
	}

	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(values); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close() //nolint:wrapcheck
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(values); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}
}
