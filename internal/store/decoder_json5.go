// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/titanous/json5"

	"github.com/MKhiriev/tradie-config/models"
)

// JSON5Decoder decodes JSON5 documents: comments, trailing commas, unquoted
// keys, single-quoted strings and hex numbers. Objects decode to
// map[string]any, arrays to []any and numbers to float64.
type JSON5Decoder struct{}

// NewJSON5Decoder constructs the default [Decoder].
func NewJSON5Decoder() Decoder {
	return JSON5Decoder{}
}

// Decode implements [Decoder]. It fails with [ErrNotAnObject] when the
// document is valid but its top-level value is not an object.
func (JSON5Decoder) Decode(data []byte) (models.Tree, error) {
	var v any
	if err := json5.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	t, ok := models.AsTree(v)
	if !ok {
		return nil, ErrNotAnObject
	}
	return t, nil
}
