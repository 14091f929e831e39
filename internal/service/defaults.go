// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/tradie-config/models"

// Built-in context names.
const (
	ContextTest     = "test"
	ContextOptimise = "optimise"
)

// DefaultConfig returns the built-in configuration. Every call builds a new
// value, so callers may modify the result freely.
func DefaultConfig() models.UserConfig {
	return models.UserConfig{
		Settings: models.Tree{
			models.KeySrc:  "./src/",
			models.KeyDest: "./dist/",
			models.KeyTmp:  "./tmp",

			models.KeyScripts: map[string]any{
				"bundles":    []any{"./index.js"},
				"vendors":    []any{},
				"extensions": []any{".js"},
			},

			models.KeyStyles: map[string]any{
				"bundles":    []any{"./index.css"},
				"extensions": []any{".scss", ".css"},
			},

			models.KeyPlugins: []any{},

			// bundler-specific escape hatch, passed through untouched
			models.KeyWebpack: map[string]any{},
		},
		Contexts: map[string]models.Tree{
			ContextTest:     {},
			ContextOptimise: {},
		},
	}
}
