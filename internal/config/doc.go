// Package config assembles the runtime options of the tradie-config command.
//
// Options are layered in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (TRADIE_ prefix)
//  3. Command-line flags
//
// The main entry point is [GetOptions]. The project configuration itself is
// resolved by package service; this package only decides where and how.
package config
