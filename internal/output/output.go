// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output renders configuration values for humans and scripts.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a format other than json or yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Write encodes v to w as indented JSON or as YAML. Map keys come out sorted
// in both encodings, so equal configurations render identically.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
