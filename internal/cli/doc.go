// Package cli implements the tradie-config command tree on top of cobra.
package cli
