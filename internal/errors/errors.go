package errors

import "errors"

// Target errors indicate problems with the directory being rewritten.
var (
	// ErrRootNotFound indicates the target directory does not exist.
	ErrRootNotFound = errors.New("target directory does not exist")

	// ErrNotADirectory indicates the target path exists but is not a directory.
	ErrNotADirectory = errors.New("target path is not a directory")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileType indicates the file does not carry the target extension.
	ErrInvalidFileType = errors.New("file does not match the target extension")
)

// Config errors indicate issues with the .logshift.toml project config.
var (
	// ErrConfigExists indicates a project config is already present.
	ErrConfigExists = errors.New("project config already exists")

	// ErrInvalidExtension indicates a configured extension is malformed.
	ErrInvalidExtension = errors.New("extension must start with a dot")

	// ErrInvalidLevel indicates a configured log level is not recognized.
	ErrInvalidLevel = errors.New("level must be one of debug, info, warning, error")

	// ErrInvalidCategory indicates a configured category symbol is malformed.
	ErrInvalidCategory = errors.New("category symbol must be a lowercase identifier")
)
