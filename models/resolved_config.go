// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Group is a settings group such as "scripts" or "styles", holding ordered
// lists like "bundles", "vendors" and "extensions".
type Group map[string]any

// Strings returns the string elements of the list stored under key, skipping
// elements of any other type. A missing or non-array entry yields nil.
func (g Group) Strings(key string) []string {
	items, ok := AsArray(g[key])
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ResolvedConfig is the final configuration handed to downstream consumers:
// defaults, user settings and the requested context merged together, with
// path fields made absolute.
//
// It carries no context fragments; the reserved key cannot be represented.
type ResolvedConfig struct {
	// Root is the absolute directory holding source files. It is derived
	// from the configured src, not from the project root itself.
	Root string
	// Src is the absolute source directory.
	Src string
	// Dest is the absolute output directory.
	Dest string
	// Tmp is the absolute scratch directory.
	Tmp string

	settings Tree
}

// NewResolvedConfig builds a ResolvedConfig from absolute paths and the
// remaining settings. Path keys and [ReservedKey] are dropped from settings
// since they are represented by the struct fields or not at all.
func NewResolvedConfig(root, src, dest, tmp string, settings Tree) ResolvedConfig {
	rest := make(Tree, len(settings))
	for k, v := range settings {
		switch k {
		case ReservedKey, KeyRoot, KeySrc, KeyDest, KeyTmp:
			continue
		}
		rest[k] = CloneValue(v)
	}

	return ResolvedConfig{
		Root:     root,
		Src:      src,
		Dest:     dest,
		Tmp:      tmp,
		settings: rest,
	}
}

// Get returns a copy of the value stored under a top-level key. Path keys are
// answered from the resolved fields.
func (c ResolvedConfig) Get(key string) (any, bool) {
	switch key {
	case KeyRoot:
		return c.Root, true
	case KeySrc:
		return c.Src, true
	case KeyDest:
		return c.Dest, true
	case KeyTmp:
		return c.Tmp, true
	}

	v, ok := c.settings[key]
	if !ok {
		return nil, false
	}
	return CloneValue(v), true
}

// Group returns a copy of the named settings group, or an empty group when the
// key is missing or not an object.
func (c ResolvedConfig) Group(name string) Group {
	t, ok := AsTree(c.settings[name])
	if !ok {
		return Group{}
	}
	return Group(t.Clone())
}

// Scripts returns the "scripts" group.
func (c ResolvedConfig) Scripts() Group { return c.Group(KeyScripts) }

// Styles returns the "styles" group.
func (c ResolvedConfig) Styles() Group { return c.Group(KeyStyles) }

// Plugins returns a copy of the "plugins" list.
func (c ResolvedConfig) Plugins() []any {
	items, ok := AsArray(c.settings[KeyPlugins])
	if !ok {
		return nil
	}
	return CloneValue(items).([]any)
}

// Webpack returns the opaque pass-through object for the bundler.
func (c ResolvedConfig) Webpack() Tree {
	t, ok := AsTree(c.settings[KeyWebpack])
	if !ok {
		return Tree{}
	}
	return t.Clone()
}

// Map returns the whole configuration as one deep-copied object, path fields
// included.
func (c ResolvedConfig) Map() map[string]any {
	out := map[string]any(c.settings.Clone())
	out[KeyRoot] = c.Root
	out[KeySrc] = c.Src
	out[KeyDest] = c.Dest
	out[KeyTmp] = c.Tmp
	return out
}

// MarshalJSON implements json.Marshaler.
func (c ResolvedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

// MarshalYAML implements yaml.Marshaler.
func (c ResolvedConfig) MarshalYAML() (any, error) {
	return c.Map(), nil
}
