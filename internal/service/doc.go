// Package service resolves a project's effective build configuration.
//
// Resolution layers three sources, each producing a new value:
//  1. the built-in defaults ([DefaultConfig]);
//  2. the project's config file, combined with the defaults by
//     [merge.CombineAndReplace];
//  3. an optional named context fragment from the file's "_" tree, applied by
//     [merge.CombineAndDeepMerge] so it can extend lists.
//
// Finally the path fields are made absolute against the project root and the
// result is returned as a [models.ResolvedConfig], which cannot hold the
// reserved "_" key.
package service
