package rewrite

import (
	"fmt"
	"os"
)

// Content applies the ordered rules to file content and reports whether
// anything changed.
func Content(content string, rules []Rule) (string, bool) {
	out := content
	for _, rule := range rules {
		out = rule.apply(out)
	}
	return out, out != content
}

// Change is a pending rewrite of one file.
type Change struct {
	Path   string
	Before string
	After  string

	perm os.FileMode
}

// PreviewFile reads a file and computes its rewrite without touching
// disk. Returns nil if the content would not change.
func PreviewFile(path string, rules []Rule) (*Change, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, changed := Content(string(data), rules)
	if !changed {
		return nil, nil
	}

	return &Change{
		Path:   path,
		Before: string(data),
		After:  out,
		perm:   info.Mode().Perm(),
	}, nil
}

// Apply overwrites the file with the rewritten content, keeping its
// original permission bits. No backup is made.
func (c *Change) Apply() error {
	if err := os.WriteFile(c.Path, []byte(c.After), c.perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Path, err)
	}
	return nil
}

// UpdateFile rewrites a file in place, writing back only if the content
// changed. Returns whether the file was modified.
func UpdateFile(path string, rules []Rule) (bool, error) {
	change, err := PreviewFile(path, rules)
	if err != nil {
		return false, err
	}
	if change == nil {
		return false, nil
	}
	return true, change.Apply()
}
