// Package scanner discovers source files eligible for rewriting.
//
// Discovery is read-only. A full scan walks the tree under the target
// root and yields regular files carrying the target extension, skipping
// ignored directories (.git, build output, vendored pods) wholesale.
// The scan command additionally accepts explicit paths and ** globs,
// resolved through doublestar.
package scanner
