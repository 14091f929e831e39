// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/tradie-config/internal/config"
	"github.com/MKhiriev/tradie-config/internal/output"
	"github.com/MKhiriev/tradie-config/internal/service"
	"github.com/MKhiriev/tradie-config/internal/workers"
	"github.com/MKhiriev/tradie-config/models"
)

func (a *app) newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, resolver, _, err := a.setup()
			if err != nil {
				return err
			}

			cfg, err := resolver.Resolve(opts.Root, opts.Context)
			if err != nil {
				return err
			}
			return output.Write(a.stdout, opts.Format, cfg)
		},
	}
	config.BindFormatFlag(cmd.Flags(), a.flags)
	return cmd
}

func (a *app) newDefaultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in configuration, context fragments included",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, _, err := a.setup()
			if err != nil {
				return err
			}
			return output.Write(a.stdout, opts.Format, service.DefaultConfig().Tree())
		},
	}
	config.BindFormatFlag(cmd.Flags(), a.flags)
	return cmd
}

func (a *app) newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location and whether it exists",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, resolver, _, err := a.setup()
			if err != nil {
				return err
			}

			root, err := filepath.Abs(opts.Root)
			if err != nil {
				return fmt.Errorf("error resolving root: %w", err)
			}
			path := resolver.ConfigPath(root)

			state := "exists"
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				state = "missing"
			} else if err != nil {
				return fmt.Errorf("error checking config file %s: %w", path, err)
			}

			fmt.Fprintf(a.stdout, "%s\t%s\n", path, state)
			return nil
		},
	}
}

func (a *app) newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the resolved configuration and again after every change",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, resolver, log, err := a.setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := func(cfg models.ResolvedConfig, err error) {
				if err != nil {
					return
				}
				if err := output.Write(a.stdout, opts.Format, cfg); err != nil {
					log.Error().Err(err).Msg("error writing resolved config")
				}
			}

			var w workers.Worker = workers.NewConfigWatcher(resolver, opts.Root, opts.Context, opts.Debounce, handler, log)
			return w.Run(ctx)
		},
	}
	config.BindFormatFlag(cmd.Flags(), a.flags)
	config.BindDebounceFlag(cmd.Flags(), a.flags)
	return cmd
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(a.stdout, a.info.String())
		},
	}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}
