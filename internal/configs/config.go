package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	lserrors "github.com/skalene/logshift/internal/errors"
)

// ConfigFileName is the project config file looked up in the target root.
const ConfigFileName = ".logshift.toml"

// Defaults reproduce the tool's behavior when no config file is present.
const (
	DefaultExtension = ".swift"
	DefaultCategory  = "general"
	DefaultLevel     = "info"
)

// DefaultIgnoreDirs are directory names skipped during scanning regardless
// of configuration. Config entries are added on top of these.
var DefaultIgnoreDirs = []string{".git", ".build", ".logshift", "Pods"}

type ProjectConfig struct {
	Rewrite RewriteConfig `toml:"rewrite"`
}

type RewriteConfig struct {
	Extension       string            `toml:"extension"`
	DefaultCategory string            `toml:"default_category"`
	Level           string            `toml:"level"`
	IgnoreDirs      []string          `toml:"ignore_dirs"`
	Categories      map[string]string `toml:"categories"`
}

// categorySymbolPattern matches valid structured-log category symbols.
var categorySymbolPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Default returns a config carrying the built-in defaults.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Rewrite: RewriteConfig{
			Extension:       DefaultExtension,
			DefaultCategory: DefaultCategory,
			Level:           DefaultLevel,
			Categories:      map[string]string{},
		},
	}
}

// Path returns the location of the project config under the given root.
func Path(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// Load reads the project config from the target root. An absent file is
// not an error: the built-in defaults are returned. Fields left empty in
// the file fall back to their defaults, and configured ignore_dirs are
// appended to the built-in ignore list.
func Load(root string) (*ProjectConfig, error) {
	config := Default()

	configPath := Path(root)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	loaded := &ProjectConfig{}
	if err := LoadTOML(configPath, loaded); err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	if loaded.Rewrite.Extension != "" {
		config.Rewrite.Extension = loaded.Rewrite.Extension
	}
	if loaded.Rewrite.DefaultCategory != "" {
		config.Rewrite.DefaultCategory = loaded.Rewrite.DefaultCategory
	}
	if loaded.Rewrite.Level != "" {
		config.Rewrite.Level = loaded.Rewrite.Level
	}
	config.Rewrite.IgnoreDirs = loaded.Rewrite.IgnoreDirs
	for tag, symbol := range loaded.Rewrite.Categories {
		config.Rewrite.Categories[strings.ToLower(tag)] = symbol
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that configured values can produce well-formed
// structured-log calls.
func (c *ProjectConfig) Validate() error {
	if !strings.HasPrefix(c.Rewrite.Extension, ".") || len(c.Rewrite.Extension) < 2 {
		return fmt.Errorf("%w: %q", lserrors.ErrInvalidExtension, c.Rewrite.Extension)
	}

	switch c.Rewrite.Level {
	case "debug", "info", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", lserrors.ErrInvalidLevel, c.Rewrite.Level)
	}

	if !categorySymbolPattern.MatchString(c.Rewrite.DefaultCategory) {
		return fmt.Errorf("%w: %q", lserrors.ErrInvalidCategory, c.Rewrite.DefaultCategory)
	}
	for tag, symbol := range c.Rewrite.Categories {
		if !categorySymbolPattern.MatchString(symbol) {
			return fmt.Errorf("%w: %q (for tag %q)", lserrors.ErrInvalidCategory, symbol, tag)
		}
	}

	return nil
}

// IgnoredDirs returns the combined built-in and configured ignore list.
func (c *ProjectConfig) IgnoredDirs() []string {
	dirs := make([]string, 0, len(DefaultIgnoreDirs)+len(c.Rewrite.IgnoreDirs))
	dirs = append(dirs, DefaultIgnoreDirs...)
	dirs = append(dirs, c.Rewrite.IgnoreDirs...)
	return dirs
}

// WriteStarter writes a starter config into the target root. It refuses
// to overwrite an existing one.
func WriteStarter(root string) (string, error) {
	configPath := Path(root)
	if _, err := os.Stat(configPath); err == nil {
		return configPath, lserrors.ErrConfigExists
	} else if !os.IsNotExist(err) {
		return configPath, fmt.Errorf("failed to check for existing config: %w", err)
	}

	if err := SaveTOML(configPath, Default()); err != nil {
		return configPath, fmt.Errorf("failed to write starter config: %w", err)
	}
	return configPath, nil
}
