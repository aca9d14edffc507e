// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExplainCommand(settings *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <path>",
		Short: "Explain which tier supplied the value at path",
		Long: `Explain shows the winning value at the dot delimited path with the tier
that supplied it, followed by the values of lower tiers. Credentials are blurred.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, _, err := settings.resolver(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if _, err := resolver.Tree(); err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), resolver.Explain(args[0]))

			return err //nolint:wrapcheck
		},
	}
}
