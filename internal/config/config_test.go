package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Output.HTML {
		t.Error("Output.HTML = true, want false")
	}
	if cfg.Build.Workers != 0 {
		t.Errorf("Build.Workers = %d, want 0", cfg.Build.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "abc", 3); err != nil {
		t.Errorf("at limit: unexpected error %v", err)
	}
	err := validateFieldLength("f", "abcd", 3)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("over limit: error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "f (4 chars, max 3)") {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid full config",
			cfg: Config{
				Output:  OutputConfig{DefaultDir: "docs", HTML: true},
				Build:   BuildConfig{Workers: 4},
				Preview: PreviewConfig{Width: 100, Style: "light"},
			},
		},
		{
			name:    "negative workers",
			cfg:     Config{Build: BuildConfig{Workers: -1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "too many workers",
			cfg:     Config{Build: BuildConfig{Workers: MaxWorkers + 1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "width too narrow",
			cfg:     Config{Preview: PreviewConfig{Width: MinWidth - 1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "width too wide",
			cfg:     Config{Preview: PreviewConfig{Width: MaxWidth + 1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "style too long",
			cfg:     Config{Preview: PreviewConfig{Style: strings.Repeat("x", MaxStyleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output dir too long",
			cfg:     Config{Output: OutputConfig{DefaultDir: strings.Repeat("d", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	valid := write("valid.yaml", "output:\n  defaultDir: out\n  html: true\nbuild:\n  workers: 2\npreview:\n  width: 72\n  style: notty\n")
	unknown := write("unknown.yaml", "output:\n  dir: out\n")
	invalid := write("invalid.yaml", "build:\n  workers: 99\n")
	empty := write("empty.yaml", "")

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.DefaultDir != "out" || !cfg.Output.HTML {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Build.Workers != 2 {
			t.Errorf("Build.Workers = %d, want 2", cfg.Build.Workers)
		}
		if cfg.Preview.Width != 72 || cfg.Preview.Style != "notty" {
			t.Errorf("Preview = %+v", cfg.Preview)
		}
	})

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing path", filepath.Join(dir, "missing.yaml"), ErrConfigNotFound},
		{"missing name", "definitely-not-a-config-name", ErrConfigNotFound},
		{"unknown key", unknown, ErrConfigParse},
		{"empty file", empty, ErrConfigParse},
		{"out of range", invalid, ErrOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("mdwizard")
	if len(paths) < 2 {
		t.Fatalf("expected at least local paths, got %v", paths)
	}
	if paths[0] != "mdwizard.yaml" || paths[1] != "mdwizard.yml" {
		t.Errorf("local paths = %v", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, appDir) {
			t.Errorf("user path %q should be under %s", p, appDir)
		}
	}
}
