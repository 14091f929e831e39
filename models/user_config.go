// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserConfig is one configuration layer before resolution: either the
// built-in defaults or the decoded contents of a project's config file.
//
// The reserved "_" sub-tree of the file is split off into Contexts when the
// layer is built, so Settings never holds [ReservedKey].
type UserConfig struct {
	// Settings holds every top-level key except the reserved one.
	Settings Tree

	// Contexts maps a context name (e.g. "test", "optimise") to the partial
	// configuration applied when that context is requested.
	Contexts map[string]Tree
}

// NewUserConfig splits a decoded configuration object into settings and
// context fragments. A reserved value that is not an object contributes no
// contexts; a fragment that is not an object is kept as an empty one.
// The input is not modified.
func NewUserConfig(raw Tree) UserConfig {
	cfg := UserConfig{
		Settings: make(Tree, len(raw)),
		Contexts: make(map[string]Tree),
	}

	for k, v := range raw {
		if k != ReservedKey {
			cfg.Settings[k] = CloneValue(v)
			continue
		}

		fragments, ok := AsTree(v)
		if !ok {
			continue
		}
		for name, fragment := range fragments {
			if t, ok := AsTree(fragment); ok {
				cfg.Contexts[name] = t.Clone()
			} else {
				cfg.Contexts[name] = Tree{}
			}
		}
	}

	return cfg
}

// Context returns the fragment registered for name and whether it exists.
// The returned tree is a copy.
func (c UserConfig) Context(name string) (Tree, bool) {
	fragment, ok := c.Contexts[name]
	if !ok {
		return Tree{}, false
	}
	return fragment.Clone(), true
}

// Tree reassembles the layer into a single object with the fragments under
// [ReservedKey], the shape used in config files.
func (c UserConfig) Tree() Tree {
	out := c.Settings.Clone()
	fragments := make(map[string]any, len(c.Contexts))
	for name, fragment := range c.Contexts {
		fragments[name] = map[string]any(fragment.Clone())
	}
	out[ReservedKey] = fragments
	return out
}
