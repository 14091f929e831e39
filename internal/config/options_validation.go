// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged [Options] before a command uses them.
func (o *Options) validate() error {
	switch o.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, o.Format)
	}

	if _, err := zerolog.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, o.LogLevel)
	}

	if o.Debounce < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDebounce, o.Debounce)
	}

	return nil
}
