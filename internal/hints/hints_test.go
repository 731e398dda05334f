package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "user path suggested",
			paths:    []string{"cfg.yaml", "cfg.yml", "/home/u/.config/go-mdwizard/cfg.yaml"},
			contains: []string{"--config", "or create /home/u/.config/go-mdwizard/cfg.yaml"},
		},
		{
			name:     "local paths only",
			paths:    []string{"cfg.yaml", "cfg.yml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(hint, unwanted) {
					t.Errorf("hint %q should not contain %q", hint, unwanted)
				}
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"output directory", ForOutputDirectory(), "writable"},
		{"recipe", ForRecipe(), "help build"},
		{"no input", ForNoInput(), ".yaml or .yml"},
		{"unknown command", ForUnknownCommand(), "mdwizard help"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q missing %q", tt.hint, tt.want)
			}
		})
	}
}

func TestForRecipe_JoinsHints(t *testing.T) {
	t.Parallel()

	hint := ForRecipe()
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("expected a single hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "; ") {
		t.Errorf("expected joined hints, got %q", hint)
	}
}

func TestForTerminalStyle(t *testing.T) {
	t.Parallel()

	if got := ForTerminalStyle(nil); got != "" {
		t.Errorf("ForTerminalStyle(nil) = %q, want empty", got)
	}
	got := ForTerminalStyle([]string{"dark", "light"})
	if !strings.Contains(got, "available: dark, light") {
		t.Errorf("ForTerminalStyle() = %q", got)
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
}
