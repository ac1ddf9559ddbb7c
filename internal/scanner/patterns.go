package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	lserrors "github.com/skalene/logshift/internal/errors"
)

// ResolvePatterns takes user-provided paths/globs and returns matching
// source files. If patterns is empty, nil is returned and the caller
// should fall back to a full tree scan.
func ResolvePatterns(patterns []string, root string, opts Options) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	var files []string
	seen := make(map[string]bool) // Deduplicate across patterns.

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, root, opts)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, lserrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, root string, opts Options) ([]string, error) {
	// Relative patterns are anchored at the scan root.
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(root, pattern)
	}

	// A directory pattern means "everything matching underneath it".
	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return FindSourceFiles(absPattern, opts)
	}

	// Globs go through doublestar for ** support.
	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern, pattern, opts)
	}

	// Anything else is a literal file path.
	if _, err := os.Stat(absPattern); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", lserrors.ErrFileNotFound, pattern)
	}
	if !strings.HasSuffix(absPattern, opts.Extension) {
		return nil, fmt.Errorf("%w: %s", lserrors.ErrInvalidFileType, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern, pattern string, opts Options) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if inIgnoredDir(m, opts.IgnoreDirs) {
			continue
		}
		if strings.HasSuffix(m, opts.Extension) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

// inIgnoredDir reports whether any path component is an ignored directory.
func inIgnoredDir(path string, ignoreDirs []string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if ignored(part, ignoreDirs) {
			return true
		}
	}
	return false
}
