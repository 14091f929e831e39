// Package store reads a project's configuration file from disk.
//
// The file (".tradierc" by default) sits at the project root and holds an
// extended-JSON object: comments, trailing commas, unquoted keys and
// single-quoted strings are accepted. A missing file is a normal state and
// yields an empty configuration; a file that cannot be decoded is fatal and
// reported as a [*ConfigParseError].
package store
