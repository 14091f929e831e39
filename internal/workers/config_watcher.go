// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/tradie-config/internal/logger"
	"github.com/MKhiriev/tradie-config/internal/service"
	"github.com/MKhiriev/tradie-config/models"
)

// DefaultDebounce is used when [ConfigWatcher] is given no debounce.
const DefaultDebounce = 200 * time.Millisecond

// ResolveHandler receives every resolution made by a [ConfigWatcher]. Exactly
// one of cfg and err is meaningful.
type ResolveHandler func(cfg models.ResolvedConfig, err error)

// ConfigWatcher resolves a project's configuration once, then again every
// time its config file is written, created, renamed or removed. Bursts of
// events within the debounce window cause a single resolution.
type ConfigWatcher struct {
	resolver    service.ConfigResolver
	root        string
	contextName string
	debounce    time.Duration
	handler     ResolveHandler

	logger *logger.Logger
}

// NewConfigWatcher constructs a [ConfigWatcher] for root. A zero debounce
// means [DefaultDebounce].
func NewConfigWatcher(
	resolver service.ConfigResolver,
	root, contextName string,
	debounce time.Duration,
	handler ResolveHandler,
	log *logger.Logger,
) *ConfigWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{
		resolver:    resolver,
		root:        root,
		contextName: contextName,
		debounce:    debounce,
		handler:     handler,
		logger:      log.GetChildLogger("watcher"),
	}
}

// Run implements [Worker]. It returns nil once ctx is cancelled, or an error
// if the config file's directory cannot be watched.
//
// The directory is watched rather than the file, so a config file that does
// not exist yet or is replaced by an editor is still picked up.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	root, err := filepath.Abs(w.root)
	if err != nil {
		return fmt.Errorf("error resolving watch root: %w", err)
	}
	path := filepath.Clean(w.resolver.ConfigPath(root))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(path), err)
	}

	w.logger.Info().Str("path", path).Msg("watching config file for changes")
	w.resolve(root)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !relevant(event) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("config file changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			w.resolve(root)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("config watcher error")
		}
	}
}

func (w *ConfigWatcher) resolve(root string) {
	cfg, err := w.resolver.Resolve(root, w.contextName)
	if err != nil {
		w.logger.Error().Err(err).Msg("config resolution failed")
	}
	w.handler(cfg, err)
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
