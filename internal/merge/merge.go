// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import "github.com/MKhiriev/tradie-config/models"

// groupKeys are the top-level groups merged one level deep by
// [CombineAndReplace].
var groupKeys = [...]string{models.KeyScripts, models.KeyStyles}

// CombineAndReplace returns base with every top-level key of overlay
// replacing base's value, except the "scripts" and "styles" groups whose
// entries are combined: base's entries first, then overlay's entries
// replacing any with the same key. Group entries are replaced whole, never
// merged further. Both groups are always objects in the result; a group value
// that is not an object contributes no entries.
func CombineAndReplace(base, overlay models.Tree) models.Tree {
	out := base.Clone()
	for k, v := range overlay {
		out[k] = models.CloneValue(v)
	}

	for _, key := range groupKeys {
		group := make(map[string]any)
		if t, ok := models.AsTree(base[key]); ok {
			for k, v := range t {
				group[k] = models.CloneValue(v)
			}
		}
		if t, ok := models.AsTree(overlay[key]); ok {
			for k, v := range t {
				group[k] = models.CloneValue(v)
			}
		}
		out[key] = group
	}

	return out
}

// CombineAndDeepMerge merges overlay into base recursively. For a key held by
// both: two objects merge key by key, two arrays concatenate (base's elements
// followed by overlay's, duplicates kept), and any other pairing takes
// overlay's value. Keys held by only one side are copied.
func CombineAndDeepMerge(base, overlay models.Tree) models.Tree {
	out := base.Clone()
	for k, v := range overlay {
		prev, ok := out[k]
		if !ok {
			out[k] = models.CloneValue(v)
			continue
		}
		out[k] = mergeValues(prev, v)
	}
	return out
}

// mergeValues combines two values already known to share a key. prev is owned
// by the caller's result and may be reused.
func mergeValues(prev, next any) any {
	switch pk, nk := models.KindOf(prev), models.KindOf(next); {
	case pk == models.KindObject && nk == models.KindObject:
		p, _ := models.AsTree(prev)
		n, _ := models.AsTree(next)
		return map[string]any(CombineAndDeepMerge(p, n))
	case pk == models.KindArray && nk == models.KindArray:
		p, _ := models.AsArray(prev)
		n, _ := models.AsArray(next)
		joined := make([]any, 0, len(p)+len(n))
		for _, e := range p {
			joined = append(joined, models.CloneValue(e))
		}
		for _, e := range n {
			joined = append(joined, models.CloneValue(e))
		}
		return joined
	default:
		return models.CloneValue(next)
	}
}
