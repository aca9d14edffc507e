// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nil-go/stratum"
)

// tree holds every key of the merged configuration.
type tree struct {
	stratum.Base

	Values map[string]any `stratum:",remain"`
}

func newWatchCommand(settings *settings) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the configuration and again after every reload",
		Long: `Watch prints the merged configuration, then reloads it whenever a file
of any tier changes or the process receives SIGHUP. A failed reload keeps
the previous configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hangup := make(chan os.Signal, 1)
			signal.Notify(hangup, syscall.SIGHUP)
			defer signal.Stop(hangup)

			return watch(ctx, settings, cmd, format, hangup)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")

	return cmd
}

func watch(ctx context.Context, settings *settings, cmd *cobra.Command, format string, reload <-chan os.Signal) error {
	resolver, logger, err := settings.resolver(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	registry := stratum.NewRegistry(resolver)

	current := &tree{}
	if err := registry.Load(current); err != nil {
		return err //nolint:wrapcheck
	}
	registry.Set(current)

	out := cmd.OutOrStdout()
	if err := encode(out, format, current.Values); err != nil {
		return err
	}
	var outMutex sync.Mutex
	registry.OnReload(func(schema stratum.Schema) {
		if reloaded, ok := schema.(*tree); ok {
			outMutex.Lock()
			defer outMutex.Unlock()

			if err := encode(out, format, reloaded.Values); err != nil {
				logger.Warn("Could not print configuration.", "error", err)
			}
		}
	})

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return registry.Watch(ctx)
	})
	group.Go(func() error {
		for {
			select {
			case <-reload:
				if err := registry.Reload(); err != nil {
					logger.WarnContext(ctx, "Could not reload configuration, keep the previous one.", "error", err)
				}
			case <-ctx.Done():
				return nil
			}
		}
	})

	return group.Wait() //nolint:wrapcheck
}
