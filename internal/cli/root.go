// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/tradie-config/internal/config"
	"github.com/MKhiriev/tradie-config/internal/logger"
	"github.com/MKhiriev/tradie-config/internal/service"
	"github.com/MKhiriev/tradie-config/internal/store"
	"github.com/MKhiriev/tradie-config/models"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// app carries what every command needs: where to write and the flags parsed
// from the command line.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	info    models.AppBuildInfo
	flags   *config.Options
	flagSet *pflag.FlagSet
}

// NewRootCommand builds the command tree writing results to stdout and logs
// and errors to stderr.
func NewRootCommand(info models.AppBuildInfo, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, info: info}

	root := &cobra.Command{
		Use:           "tradie-config",
		Short:         "Resolve a project's build configuration",
		Long:          "tradie-config layers the built-in defaults, the project's .tradierc and an optional context override, and prints the resolved configuration.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	a.flagSet = root.PersistentFlags()
	a.flags = config.BindPersistentFlags(a.flagSet)

	root.AddCommand(
		a.newResolveCommand(),
		a.newDefaultsCommand(),
		a.newPathCommand(),
		a.newWatchCommand(),
		a.newVersionCommand(),
	)

	return root
}

// Run executes the command tree with args and returns the process exit code.
func Run(info models.AppBuildInfo, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(info, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsageError
	}
	return ExitRuntimeError
}

// setup merges flags with env and defaults and builds the logger and resolver.
func (a *app) setup() (*config.Options, service.ConfigResolver, *logger.Logger, error) {
	opts, err := config.GetOptions(a.flags, a.flagSet.Changed)
	if err != nil {
		return nil, nil, nil, &usageError{err: err}
	}

	log := logger.NewLoggerWithWriter("tradie-config", a.stderr)
	if err := log.SetLevel(opts.LogLevel); err != nil {
		return nil, nil, nil, &usageError{err: err}
	}

	loader := store.NewFileConfigLoader(store.WithFileName(opts.ConfigFile))
	resolver := service.NewResolver(loader, log, service.WithStrictContext(opts.StrictContext))

	return opts, resolver, log, nil
}
