// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Output formats accepted by [Options.Format].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix is prepended to every env tag of [Options].
const EnvPrefix = "TRADIE_"

// Options holds the settings of one tradie-config invocation.
//
// Struct tags:
//   - env — environment variable name, without [EnvPrefix] (caarlos0/env).
type Options struct {
	// Root is the project directory holding the config file. Empty means the
	// working directory.
	// Env: TRADIE_ROOT
	Root string `env:"ROOT"`

	// Context names the override fragment to apply (e.g. "test").
	// Env: TRADIE_CONTEXT
	Context string `env:"CONTEXT"`

	// ConfigFile overrides the config file name, or gives an absolute path.
	// Env: TRADIE_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`

	// Format is the output encoding, "json" or "yaml".
	// Env: TRADIE_FORMAT
	Format string `env:"FORMAT"`

	// LogLevel is a zerolog level name.
	// Env: TRADIE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// StrictContext makes an unknown context name an error.
	// Env: TRADIE_STRICT_CONTEXT
	StrictContext bool `env:"STRICT_CONTEXT"`

	// Debounce is how long the watcher waits after a file event before
	// re-resolving (e.g. "200ms").
	// Env: TRADIE_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// DefaultOptions returns the options used when nothing else is set.
func DefaultOptions() *Options {
	return &Options{
		Format:   FormatJSON,
		LogLevel: "info",
		Debounce: 200 * time.Millisecond,
	}
}

// GetOptions layers defaults, environment variables and flags and validates
// the result. flags holds the values parsed from the command line; zero
// fields count as unset unless changed reports the flag as given (as
// pflag.FlagSet.Changed does), which lets --strict-context=false override
// TRADIE_STRICT_CONTEXT. A nil flags is treated as no flags and a nil changed
// as no explicitly given flags.
func GetOptions(flags *Options, changed func(name string) bool) (*Options, error) {
	return newOptionsBuilder().
		withDefaults().
		withEnv().
		withFlags(flags, changed).
		build()
}
