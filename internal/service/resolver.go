// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"os"

	"github.com/MKhiriev/tradie-config/internal/logger"
	"github.com/MKhiriev/tradie-config/internal/merge"
	"github.com/MKhiriev/tradie-config/internal/store"
	"github.com/MKhiriev/tradie-config/models"
)

type configResolver struct {
	loader        store.ConfigLoader
	strictContext bool

	logger *logger.Logger
}

// ResolverOption customises [NewResolver].
type ResolverOption func(*configResolver)

// WithStrictContext makes an unknown context name fail with
// [ErrUnknownContext] instead of applying nothing.
func WithStrictContext(strict bool) ResolverOption {
	return func(r *configResolver) {
		r.strictContext = strict
	}
}

// NewResolver constructs a [ConfigResolver] reading user configuration
// through loader.
func NewResolver(loader store.ConfigLoader, log *logger.Logger, opts ...ResolverOption) ConfigResolver {
	r := &configResolver{
		loader: loader,
		logger: log.GetChildLogger("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *configResolver) ConfigPath(root string) string {
	return r.loader.Path(root)
}

func (r *configResolver) Resolve(root, contextName string) (models.ResolvedConfig, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return models.ResolvedConfig{}, fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
		}
		root = wd
	}

	user, err := r.loader.Load(root)
	if err != nil {
		return models.ResolvedConfig{}, err
	}
	r.logger.Debug().
		Str("path", r.loader.Path(root)).
		Int("settings", len(user.Settings)).
		Int("contexts", len(user.Contexts)).
		Msg("loaded user config")

	combined, err := r.Combine(user, contextName)
	if err != nil {
		return models.ResolvedConfig{}, err
	}

	resolved, err := ResolvePaths(combined, root)
	if err != nil {
		return models.ResolvedConfig{}, fmt.Errorf("error resolving paths under %s: %w", root, err)
	}

	r.logger.Debug().
		Str("root", resolved.Root).
		Str("dest", resolved.Dest).
		Str("context", contextName).
		Msg("config resolved")

	return resolved, nil
}

func (r *configResolver) Combine(user models.UserConfig, contextName string) (models.Tree, error) {
	defaults := DefaultConfig()
	merged := merge.CombineAndReplace(defaults.Settings, user.Settings)

	if contextName != "" {
		_, inUser := user.Contexts[contextName]
		_, builtIn := defaults.Contexts[contextName]

		switch {
		case inUser:
			r.logger.Debug().Str("context", contextName).Msg("applying context overrides")
		case r.strictContext && !builtIn:
			return nil, fmt.Errorf("%w: %q", ErrUnknownContext, contextName)
		default:
			r.logger.Debug().Str("context", contextName).Msg("context has no overrides")
		}
	}

	return ResolveContext(merged, user, contextName), nil
}
