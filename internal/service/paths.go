// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/tradie-config/models"
)

// ResolvePaths makes the path settings of cfg absolute against root and wraps
// the result in a [models.ResolvedConfig]. An empty root means the working
// directory; a relative root is taken relative to it.
//
// Root and Src are both resolved from the configured src. Nothing is checked
// on disk.
func ResolvePaths(cfg models.Tree, root string) (models.ResolvedConfig, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return models.ResolvedConfig{}, fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
		}
		root = wd
	}

	var resolved [3]string
	for i, key := range [...]string{models.KeySrc, models.KeyDest, models.KeyTmp} {
		p, err := pathSetting(cfg, key)
		if err != nil {
			return models.ResolvedConfig{}, err
		}
		if resolved[i], err = absolute(root, p); err != nil {
			return models.ResolvedConfig{}, fmt.Errorf("error resolving %s: %w", key, err)
		}
	}
	src, dest, tmp := resolved[0], resolved[1], resolved[2]

	return models.NewResolvedConfig(src, src, dest, tmp, cfg), nil
}

func pathSetting(cfg models.Tree, key string) (string, error) {
	v, ok := cfg[key]
	if !ok {
		return "", fmt.Errorf("%w: %q is not set", ErrInvalidPathField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidPathField, key, v)
	}
	return s, nil
}

func absolute(root, p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Abs(p)
}
