package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skalene/logshift/internal/audit"
	"github.com/skalene/logshift/internal/configs"
	lserrors "github.com/skalene/logshift/internal/errors"
	"github.com/skalene/logshift/internal/rewrite"
	"github.com/skalene/logshift/internal/scanner"
)

// RewriteOptions configures the rewrite workflow.
type RewriteOptions struct {
	// Extension overrides the configured target extension when non-empty.
	Extension string

	// DryRun computes changes without writing anything back.
	DryRun bool

	// CollectDiffs keeps before/after content for every changed file so
	// the caller can render diffs.
	CollectDiffs bool

	// Found, when non-nil, is called with the number of matching files
	// right after discovery, before any file is touched.
	Found func(count int)

	// Progress, when non-nil, is called with each file path as it is
	// modified (or would be, on dry runs).
	Progress func(path string)
}

// RewriteResult contains the outcome of a rewrite run.
type RewriteResult struct {
	// Root is the validated target directory.
	Root string

	// Extension is the target extension the run used.
	Extension string

	// FilesFound is the number of matching source files discovered.
	FilesFound int

	// Modified lists the files whose content changed, in processing order.
	Modified []string

	// Changes holds pending/applied changes when CollectDiffs was set.
	Changes []rewrite.Change

	// DryRun indicates whether anything was written.
	DryRun bool
}

// Rewrite walks the tree under root and converts debug print calls to
// structured logging calls in every matching source file.
//
// Files are processed one at a time; an I/O failure aborts the run and
// leaves already-rewritten files in their new state. There is no backup
// and no rollback.
func Rewrite(ctx context.Context, root string, opts RewriteOptions) (*RewriteResult, error) {
	if err := validateRoot(root); err != nil {
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

	files, err := scanner.FindSourceFiles(root, scanner.Options{
		Extension:  extension,
		IgnoreDirs: config.IgnoredDirs(),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	if opts.Found != nil {
		opts.Found(len(files))
	}

	result := &RewriteResult{
		Root:       root,
		Extension:  extension,
		FilesFound: len(files),
		DryRun:     opts.DryRun,
	}

	rules := rewrite.Rules(rewrite.FromConfig(config))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		change, err := rewrite.PreviewFile(path, rules)
		if err != nil {
			return nil, err
		}
		if change == nil {
			continue
		}

		if !opts.DryRun {
			if err := change.Apply(); err != nil {
				return nil, err
			}
		}

		result.Modified = append(result.Modified, path)
		if opts.CollectDiffs {
			result.Changes = append(result.Changes, *change)
		}
		if opts.Progress != nil {
			opts.Progress(path)
		}
	}

	if !opts.DryRun && len(result.Modified) > 0 {
		entry := audit.NewEntry("rewrite")
		entry.Extension = extension
		entry.FilesFound = result.FilesFound
		entry.FilesModified = len(result.Modified)
		entry.Modified = result.Modified
		audit.Log(root, entry)
	}

	return result, nil
}

// validateRoot checks that the target exists and is a directory before
// any file is touched.
func validateRoot(root string) error {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", lserrors.ErrRootNotFound, root)
	}
	if err != nil {
		return fmt.Errorf("failed to check target directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", lserrors.ErrNotADirectory, root)
	}
	return nil
}
