// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// BindPersistentFlags registers the flags shared by every command on fs and
// returns the [Options] they write into once fs is parsed. Flag defaults are
// zero values so unset flags never override env or defaults.
//
// Flags:
//
//	-r/--root project directory
//	-c/--context context override to apply
//	--config-file config file name or absolute path
//	--log-level log level (debug, info, warn, error)
//	--strict-context fail on an unknown context
func BindPersistentFlags(fs *pflag.FlagSet) *Options {
	opts := &Options{}

	fs.StringVarP(&opts.Root, "root", "r", "", "Project directory (defaults to the working directory)")
	fs.StringVarP(&opts.Context, "context", "c", "", "Context override to apply, e.g. test or optimise")
	fs.StringVar(&opts.ConfigFile, "config-file", "", "Config file name or absolute path (default .tradierc)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.StrictContext, "strict-context", false, "Fail when the context is not defined")

	return opts
}

// BindFormatFlag registers -f/--format on fs, writing into opts.
func BindFormatFlag(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Format, "format", "f", "", "Output format: json or yaml")
}

// BindDebounceFlag registers --debounce on fs, writing into opts.
func BindDebounceFlag(fs *pflag.FlagSet, opts *Options) {
	fs.DurationVar(&opts.Debounce, "debounce", 0, "Delay between a file change and re-resolution (e.g. 200ms)")
}
