// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors used by tradie-config.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Log output goes to stderr; stdout is reserved for resolved configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON lines
// to os.Stderr. See [NewLoggerWithWriter].
func NewLogger(role string) *Logger {
	return NewLoggerWithWriter(role, os.Stderr)
}

// NewLoggerWithWriter constructs a *Logger for the given role label
// (e.g. "cli", "watcher") writing to w.
//
// The logger is configured with:
//   - level Info until [Logger.SetLevel] says otherwise;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
func NewLoggerWithWriter(role string, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(zerolog.InfoLevel).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel changes the minimum level emitted by l. level is one of zerolog's
// level names ("debug", "info", "warn", ...).
func (l *Logger) SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", level, err)
	}
	l.Logger = l.Level(lvl)
	return nil
}

// GetChildLogger returns a new *Logger inheriting all fields of l with a
// "component" field added.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}
