// Package ui provides semantic terminal formatting for logshift output.
//
// Formatters pair a color with a plain-text fallback so output stays
// readable when color is disabled. Color is suppressed when the NO_COLOR
// environment variable is set or the terminal does not support it.
//
// The package also renders unified diffs of pending rewrites for the
// --diff and --dry-run flags.
package ui
