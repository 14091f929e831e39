// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates opts from TRADIE_* environment variables using the
// caarlos0/env library.
//
// Returns a wrapped error if a value cannot be converted to the field type
// (e.g. a malformed duration).
func parseEnv(opts *Options) error {
	err := env.ParseWithOptions(opts, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env options: %w", err)
	}

	return nil
}
