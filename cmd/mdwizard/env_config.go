package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdwizard/internal/config"
	"github.com/alnah/go-mdwizard/internal/fileutil"
	"github.com/alnah/go-mdwizard/internal/hints"
)

// loadConfig loads the named config, or returns defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeBuildFlags applies config values that flags left unset (CLI wins).
func mergeBuildFlags(f *buildFlags, cfg *config.Config) {
	if f.output == "" {
		f.output = cfg.Output.DefaultDir
	}
	if !f.html {
		f.html = cfg.Output.HTML
	}
	if !f.workersSet {
		f.workers = cfg.Build.Workers
	}
}

// mergePreviewFlags applies config values that flags left unset (CLI wins).
func mergePreviewFlags(f *previewFlags, cfg *config.Config) {
	if f.width == 0 {
		f.width = cfg.Preview.Width
	}
	if f.style == "" {
		f.style = cfg.Preview.Style
	}
}
