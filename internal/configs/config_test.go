package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lserrors "github.com/skalene/logshift/internal/errors"
)

func TestLoadAbsentFileReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	config, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, DefaultExtension, config.Rewrite.Extension)
	assert.Equal(t, DefaultCategory, config.Rewrite.DefaultCategory)
	assert.Equal(t, DefaultLevel, config.Rewrite.Level)
	assert.Empty(t, config.Rewrite.Categories)
}

func TestLoadMergesPartialConfig(t *testing.T) {
	tmpDir := t.TempDir()

	content := `[rewrite]
extension = ".m"
ignore_dirs = ["Carthage"]

[rewrite.categories]
"Networking" = "network"
`
	require.NoError(t, os.WriteFile(Path(tmpDir), []byte(content), 0644))

	config, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, ".m", config.Rewrite.Extension)
	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultCategory, config.Rewrite.DefaultCategory)
	assert.Equal(t, DefaultLevel, config.Rewrite.Level)
	// Tags are stored lower-cased so lookups after tag lowering hit.
	assert.Equal(t, "network", config.Rewrite.Categories["networking"])
	assert.Contains(t, config.IgnoredDirs(), "Carthage")
	assert.Contains(t, config.IgnoredDirs(), ".git")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "extension without dot",
			content: "[rewrite]\nextension = \"swift\"\n",
			wantErr: lserrors.ErrInvalidExtension,
		},
		{
			name:    "unknown level",
			content: "[rewrite]\nlevel = \"trace\"\n",
			wantErr: lserrors.ErrInvalidLevel,
		},
		{
			name:    "uppercase category symbol",
			content: "[rewrite]\ndefault_category = \"General\"\n",
			wantErr: lserrors.ErrInvalidCategory,
		},
		{
			name:    "invalid override symbol",
			content: "[rewrite.categories]\n\"UI\" = \"user interface\"\n",
			wantErr: lserrors.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(Path(tmpDir), []byte(tt.content), 0644))

			_, err := Load(tmpDir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWriteStarter(t *testing.T) {
	tmpDir := t.TempDir()

	configPath, err := WriteStarter(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFileName), configPath)

	// The starter round-trips through Load as pure defaults.
	config, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultExtension, config.Rewrite.Extension)

	// A second init refuses to overwrite.
	_, err = WriteStarter(tmpDir)
	assert.ErrorIs(t, err, lserrors.ErrConfigExists)
}
