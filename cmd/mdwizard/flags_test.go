package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdwizard/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags - Build command flags
// ---------------------------------------------------------------------------

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseBuildFlags([]string{"-o", "out", "--html", "-w", "4", "-c", "team", "-q", "a.yaml", "dir"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flags.output != "out" {
		t.Errorf("output = %q, want %q", flags.output, "out")
	}
	if !flags.html {
		t.Error("html = false, want true")
	}
	if flags.workers != 4 || !flags.workersSet {
		t.Errorf("workers = %d (set %v), want 4 (set true)", flags.workers, flags.workersSet)
	}
	if flags.common.config != "team" || !flags.common.quiet || flags.common.verbose {
		t.Errorf("common = %+v", flags.common)
	}
	if len(positional) != 2 || positional[0] != "a.yaml" || positional[1] != "dir" {
		t.Errorf("positional = %v", positional)
	}
}

func TestParseBuildFlags_WorkersUnset(t *testing.T) {
	t.Parallel()

	flags, _, err := parseBuildFlags([]string{"a.yaml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags.workersSet {
		t.Error("workersSet = true, want false")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parse   func() error
		wantErr error
	}{
		{
			name: "build unknown flag",
			parse: func() error {
				_, _, err := parseBuildFlags([]string{"--pdf"})
				return err
			},
			wantErr: ErrInvalidFlags,
		},
		{
			name: "build help",
			parse: func() error {
				_, _, err := parseBuildFlags([]string{"-h"})
				return err
			},
			wantErr: flag.ErrHelp,
		},
		{
			name: "preview bad width",
			parse: func() error {
				_, _, err := parsePreviewFlags([]string{"--width", "wide"})
				return err
			},
			wantErr: ErrInvalidFlags,
		},
		{
			name: "docs positional",
			parse: func() error {
				_, err := parseDocsFlags([]string{"extra"})
				return err
			},
			wantErr: ErrInvalidFlags,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.parse(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePreviewFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parsePreviewFlags([]string{"--width", "60", "--style", "light", "--html", "doc.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags.width != 60 || flags.style != "light" || !flags.html {
		t.Errorf("flags = %+v", flags)
	}
	if len(positional) != 1 || positional[0] != "doc.md" {
		t.Errorf("positional = %v", positional)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI values win over config
// ---------------------------------------------------------------------------

func TestMergeBuildFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Output: config.OutputConfig{DefaultDir: "docs", HTML: true},
		Build:  config.BuildConfig{Workers: 8},
	}

	tests := []struct {
		name        string
		flags       buildFlags
		wantOutput  string
		wantWorkers int
	}{
		{"config fills unset", buildFlags{}, "docs", 8},
		{"flags win", buildFlags{output: "out", workers: 2, workersSet: true}, "out", 2},
		{"explicit zero workers wins", buildFlags{workers: 0, workersSet: true}, "docs", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.flags
			mergeBuildFlags(&f, cfg)
			if f.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", f.output, tt.wantOutput)
			}
			if f.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", f.workers, tt.wantWorkers)
			}
			if !f.html {
				t.Error("html should be enabled by config")
			}
		})
	}
}

func TestMergePreviewFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Preview: config.PreviewConfig{Width: 100, Style: "light"}}

	f := previewFlags{}
	mergePreviewFlags(&f, cfg)
	if f.width != 100 || f.style != "light" {
		t.Errorf("config not applied: %+v", f)
	}

	f = previewFlags{width: 60, style: "notty"}
	mergePreviewFlags(&f, cfg)
	if f.width != 60 || f.style != "notty" {
		t.Errorf("flags should win: %+v", f)
	}
}
