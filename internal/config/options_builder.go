// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	layers   []*Options
	// explicit run after the merge so flags set to a zero value still win.
	explicit []func(*Options)
	err      error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		layers: make([]*Options, 0, 3),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, layer := range b.layers {
		if err := mergo.Merge(opts, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}
	for _, apply := range b.explicit {
		apply(opts)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	b.layers = append(b.layers, DefaultOptions())
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envOpts)
	return b
}

// zeroableFlags lists flags whose zero value is a real setting, with the field
// each one writes. mergo skips zero values, so these are copied explicitly
// when the flag was given on the command line.
var zeroableFlags = map[string]func(dst, src *Options){
	"strict-context": func(dst, src *Options) { dst.StrictContext = src.StrictContext },
}

func (b *optionsBuilder) withFlags(flags *Options, changed func(name string) bool) *optionsBuilder {
	if flags == nil {
		return b
	}

	b.layers = append(b.layers, flags)
	if changed == nil {
		return b
	}
	for name, set := range zeroableFlags {
		if changed(name) {
			b.explicit = append(b.explicit, func(opts *Options) { set(opts, flags) })
		}
	}
	return b
}
