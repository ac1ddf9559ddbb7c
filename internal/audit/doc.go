// Package audit records rewrite runs as JSONL entries.
//
// If the target root contains a .logshift directory, every run that
// touches files appends one entry to .logshift/audit.jsonl: a run UUID,
// timestamp, operation, and the counts and paths of modified files.
// Recording is best-effort and never fails the run it describes.
package audit
