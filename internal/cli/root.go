// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// NewRootCommand creates the stratum command with all sub commands.
func NewRootCommand() *cobra.Command {
	settings := &settings{}
	root := &cobra.Command{
		Use:   "stratum",
		Short: "Resolve layered configuration",
		Long: `Stratum merges configuration from secret files, a project descriptor,
a configuration file, environment variables and a dotenv file.
A higher tier overrides the same key of lower tiers.`,
		SilenceUsage: true,
	}
	settings.bind(root.PersistentFlags())

	root.AddCommand(newPrintCommand(settings))
	root.AddCommand(newExplainCommand(settings))
	root.AddCommand(newWatchCommand(settings))

	return root
}

// Run executes the root command with args and returns an exit code.
func Run(args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		// Cobra already prints the error
		return ExitFailure
	}

	return ExitSuccess
}
