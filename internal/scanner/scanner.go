package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// Options controls which files a scan yields.
type Options struct {
	// Extension is the file suffix to match, including the dot.
	Extension string

	// IgnoreDirs are directory names skipped wholesale at any depth.
	IgnoreDirs []string
}

// FindSourceFiles walks the tree under root and returns every regular
// file whose name ends with the target extension. Traversal order is
// WalkDir's lexical order; callers must not depend on it.
func FindSourceFiles(root string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && ignored(d.Name(), opts.IgnoreDirs) {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip irregular files (symlinks, devices).
		if !d.Type().IsRegular() {
			return nil
		}

		if strings.HasSuffix(d.Name(), opts.Extension) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func ignored(name string, ignoreDirs []string) bool {
	for _, dir := range ignoreDirs {
		if name == dir {
			return true
		}
	}
	return false
}
