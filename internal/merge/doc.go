// Package merge implements the two strategies used to layer configuration
// trees.
//
// [CombineAndReplace] layers a user configuration over the defaults: overlay
// keys win outright, except the "scripts" and "styles" groups which are merged
// one level deep. [CombineAndDeepMerge] applies a context fragment: objects
// merge recursively and arrays concatenate, so a context can extend bundle
// lists instead of replacing them.
//
// Both functions are pure. Inputs are never modified and the result shares no
// object or array with either input.
package merge
