// Package workflows provides high-level orchestration for logshift commands.
//
// Workflows coordinate the other packages (configs, scanner, rewrite,
// audit) to implement complete user-facing features, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// The cmd/ package stays a thin layer: parse flags, call the workflow,
// format the result. Workflows handle the rest: validating the target
// directory, loading configuration, running the operation file by file,
// and recording the audit trail.
//
// Each command has a corresponding workflow:
//
//   - Rewrite: converts print calls to structured logging calls in place
//   - Scan: lists the files a rewrite would consider
//   - Init: writes a starter config and the audit directory
package workflows
