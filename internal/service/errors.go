// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnknownContext is returned in strict mode when the requested context
	// is neither a built-in context nor defined by the config file.
	ErrUnknownContext = errors.New("unknown context")

	// ErrInvalidPathField is returned when a path setting is missing or is
	// not a string.
	ErrInvalidPathField = errors.New("invalid path setting")

	// ErrWorkingDirectory is returned when no root was given and the working
	// directory cannot be determined.
	ErrWorkingDirectory = errors.New("cannot determine working directory")
)
