// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigParse matches every [*ConfigParseError] via [errors.Is].
	ErrConfigParse = errors.New("config file cannot be decoded")

	// ErrNotAnObject is returned by decoders when the document's top-level
	// value is not an object.
	ErrNotAnObject = errors.New("top-level value is not an object")
)

// ConfigParseError reports a config file that exists but cannot be decoded
// into a configuration object. It aborts resolution; no partial result is
// produced.
type ConfigParseError struct {
	// Path is the absolute or root-relative path of the offending file.
	Path string
	// Err is the decoder's failure.
	Err error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("error reading config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the decoder's failure.
func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrConfigParse].
func (e *ConfigParseError) Is(target error) bool {
	return target == ErrConfigParse
}
