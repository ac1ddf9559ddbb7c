package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skalene/logshift/internal/audit"
	"github.com/skalene/logshift/internal/configs"
)

// InitResult contains the paths created by the init workflow.
type InitResult struct {
	// ConfigPath is the starter .logshift.toml written into the root.
	ConfigPath string

	// AuditDir is the .logshift directory that enables run recording.
	AuditDir string
}

// Init prepares a directory tree for logshift: a starter config and the
// audit directory. Refuses to overwrite an existing config.
func Init(ctx context.Context, root string) (*InitResult, error) {
	if err := validateRoot(root); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	configPath, err := configs.WriteStarter(root)
	if err != nil {
		return nil, err
	}

	auditDir := filepath.Join(root, audit.DirName)
	if err := os.MkdirAll(auditDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}

	return &InitResult{
		ConfigPath: configPath,
		AuditDir:   auditDir,
	}, nil
}
