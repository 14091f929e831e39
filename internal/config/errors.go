package config

import "errors"

// Validation errors returned by [Options.validate].
var (
	// ErrInvalidFormat indicates an output format other than json or yaml.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDebounce indicates a negative watcher debounce.
	ErrInvalidDebounce = errors.New("invalid debounce")
)
