// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/tradie-config/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigLoader reads the user configuration layer for a project root.
type ConfigLoader interface {
	// Load returns the decoded configuration found at root, or an empty
	// configuration when there is no config file.
	Load(root string) (models.UserConfig, error)
	// Path returns the config file location for root.
	Path(root string) string
}

// Decoder turns raw config file bytes into a configuration object.
type Decoder interface {
	Decode(data []byte) (models.Tree, error)
}
