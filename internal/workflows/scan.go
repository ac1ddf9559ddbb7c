package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/skalene/logshift/internal/configs"
	lserrors "github.com/skalene/logshift/internal/errors"
	"github.com/skalene/logshift/internal/scanner"
)

// ScanOptions configures the scan workflow.
type ScanOptions struct {
	// Extension overrides the configured target extension when non-empty.
	Extension string

	// Patterns restricts the scan to explicit paths or globs. Empty
	// means the whole tree.
	Patterns []string
}

// ScanResult lists the source files a rewrite run would consider.
type ScanResult struct {
	Root      string
	Extension string
	Files     []string
}

// Scan discovers matching source files without touching any of them.
func Scan(ctx context.Context, root string, opts ScanOptions) (*ScanResult, error) {
	if err := validateRoot(root); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config, err := configs.Load(root)
	if err != nil {
		return nil, err
	}

	extension := config.Rewrite.Extension
	if opts.Extension != "" {
		if !strings.HasPrefix(opts.Extension, ".") || len(opts.Extension) < 2 {
			return nil, fmt.Errorf("%w: %q", lserrors.ErrInvalidExtension, opts.Extension)
		}
		extension = opts.Extension
	}

	scanOpts := scanner.Options{
		Extension:  extension,
		IgnoreDirs: config.IgnoredDirs(),
	}

	files, err := scanner.ResolvePatterns(opts.Patterns, root, scanOpts)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files, err = scanner.FindSourceFiles(root, scanOpts)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}

	return &ScanResult{
		Root:      root,
		Extension: extension,
		Files:     files,
	}, nil
}
