// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/tradie-config/internal/merge"
	"github.com/MKhiriev/tradie-config/models"
)

// ResolveContext applies the fragment user defines for contextName on top of
// merged using the deep merge strategy. An empty contextName, or one without a
// fragment, applies nothing. The result never holds [models.ReservedKey], even
// when a fragment tried to set it.
func ResolveContext(merged models.Tree, user models.UserConfig, contextName string) models.Tree {
	var out models.Tree
	if contextName == "" {
		out = merged.Clone()
	} else {
		fragment, _ := user.Context(contextName)
		out = merge.CombineAndDeepMerge(merged, fragment)
	}

	delete(out, models.ReservedKey)
	return out
}
