// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/tradie-config/models"

// ConfigResolver produces the effective configuration of a project.
type ConfigResolver interface {
	// Resolve loads the config file at root (the working directory when
	// empty), layers it over the defaults, applies contextName when not
	// empty and makes the path settings absolute.
	Resolve(root, contextName string) (models.ResolvedConfig, error)

	// Combine layers user over the defaults and applies contextName, without
	// touching the disk or resolving paths.
	Combine(user models.UserConfig, contextName string) (models.Tree, error)

	// ConfigPath returns the config file location used for root.
	ConfigPath(root string) string
}
