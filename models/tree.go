// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReservedKey is the top-level key under which a configuration file keeps its
// context override fragments. It never appears in a [ResolvedConfig].
const ReservedKey = "_"

// Well-known top-level configuration keys.
const (
	KeySrc     = "src"
	KeyDest    = "dest"
	KeyTmp     = "tmp"
	KeyRoot    = "root"
	KeyScripts = "scripts"
	KeyStyles  = "styles"
	KeyPlugins = "plugins"
	KeyWebpack = "webpack"
)

// Tree is a schema-less configuration object. Values are objects
// (map[string]any or Tree), arrays ([]any or []string) or scalars.
type Tree map[string]any

// Kind classifies a configuration value for merge dispatch.
type Kind uint8

const (
	// KindScalar covers strings, numbers, booleans, nil and any value that is
	// neither an object nor an array.
	KindScalar Kind = iota
	// KindObject is a nested configuration object.
	KindObject
	// KindArray is an ordered sequence.
	KindArray
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "scalar"
	}
}

// KindOf reports the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case Tree, map[string]any, Group:
		return KindObject
	case []any, []string:
		return KindArray
	default:
		return KindScalar
	}
}

// AsTree returns v as a Tree when v is an object.
func AsTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]any:
		return Tree(t), true
	case Group:
		return Tree(t), true
	default:
		return nil, false
	}
}

// AsArray returns v as a []any when v is an array. The returned slice may
// alias v's backing array; callers that keep it must copy.
func AsArray(v any) ([]any, bool) {
	switch a := v.(type) {
	case []any:
		return a, true
	case []string:
		out := make([]any, len(a))
		for i, s := range a {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of t. A nil tree clones to an empty one.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies objects and arrays. Scalars are returned as is.
// Objects come back as map[string]any and arrays as []any so the result only
// holds the canonical shapes produced by the decoder.
func CloneValue(v any) any {
	switch KindOf(v) {
	case KindObject:
		t, _ := AsTree(v)
		return map[string]any(t.Clone())
	case KindArray:
		a, _ := AsArray(v)
		out := make([]any, len(a))
		for i, e := range a {
			out[i] = CloneValue(e)
		}
		return out
	default:
		return v
	}
}
