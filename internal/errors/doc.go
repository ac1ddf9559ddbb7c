// Package errors defines sentinel errors for logshift operations.
//
// Callers match these with errors.Is after workflow functions wrap them
// with additional context. Grouping follows the concern the error belongs
// to: target directory problems and project config problems.
package errors
