package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdwizard/internal/fileutil"
	"github.com/alnah/go-mdwizard/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrOutOfRange      = errors.New("value out of range")
)

// appDir is the directory name under the user config directory.
const appDir = "go-mdwizard"

// Field limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxStyleLength = 30   // "tokyo-night", "github-dark"
	MaxWorkers     = 32   // Rendering is CPU-bound and cheap
	MinWidth       = 20   // Narrower wrapping is unreadable
	MaxWidth       = 400
)

// Config holds CLI configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Build   BuildConfig   `yaml:"build"`
	Preview PreviewConfig `yaml:"preview"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to each recipe
	HTML       bool   `yaml:"html"`       // Also write an HTML preview
}

// BuildConfig defines batch build options.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto (GOMAXPROCS)
}

// PreviewConfig defines preview rendering options.
type PreviewConfig struct {
	Width int    `yaml:"width"` // Terminal wrap width, 0 = 80
	Style string `yaml:"style"` // Glamour style name, empty = "dark"
}

// Validate checks field lengths and numeric ranges.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrOutOfRange, MaxWorkers, c.Build.Workers)
	}
	if c.Preview.Width != 0 && (c.Preview.Width < MinWidth || c.Preview.Width > MaxWidth) {
		return fmt.Errorf("%w: preview.width must be 0 or between %d and %d, got %d", ErrOutOfRange, MinWidth, MaxWidth, c.Preview.Width)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it is searched for in SearchPaths order.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.DecodeFile(configPath, &cfg); err != nil {
		var pathErr *fs.PathError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.As(err, &pathErr):
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.Describe(err))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// current directory, then the user config directory; .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
