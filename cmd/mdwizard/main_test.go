package main

// Notes:
// - main: not tested directly (calls os.Exit). runMain and run cover dispatch
//   and exit code mapping.
// - maxprocs: only isVerbose is tested; GOMAXPROCS tuning is process-global.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no command prints usage",
			args:       []string{"mdwizard"},
			wantStdout: "Usage: mdwizard <command>",
		},
		{
			name:       "version",
			args:       []string{"mdwizard", "version"},
			wantStdout: "mdwizard dev",
		},
		{
			name:       "help",
			args:       []string{"mdwizard", "help"},
			wantStdout: "Commands:",
		},
		{
			name:       "help build",
			args:       []string{"mdwizard", "help", "build"},
			wantStdout: "Block types:",
		},
		{
			name:       "build -h prints build help",
			args:       []string{"mdwizard", "build", "-h"},
			wantStdout: "Usage: mdwizard build",
		},
		{
			name:       "preview --help prints preview help",
			args:       []string{"mdwizard", "preview", "--help"},
			wantStdout: "Usage: mdwizard preview",
		},
		{
			name:    "unknown command",
			args:    []string{"mdwizard", "convert"},
			wantErr: ErrUnknownCommand,
		},
		{
			name:       "help unknown topic",
			args:       []string{"mdwizard", "help", "convert"},
			wantErr:    ErrUnknownCommand,
			wantStderr: "Usage: mdwizard",
		},
		{
			name:    "bad flag",
			args:    []string{"mdwizard", "build", "--nope"},
			wantErr: ErrInvalidFlags,
		},
		{
			name:    "build without input",
			args:    []string{"mdwizard", "build"},
			wantErr: ErrNoInput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			err := run(context.Background(), tt.args, env)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("run() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_UnknownCommandHint(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run(context.Background(), []string{"mdwizard", "convert"}, env)
	if err == nil || !strings.Contains(err.Error(), "hint: run 'mdwizard help'") {
		t.Errorf("error = %v, want help hint", err)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Exit codes and error output
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"success", []string{"mdwizard", "version"}, ExitSuccess},
		{"usage error", []string{"mdwizard", "bogus"}, ExitUsage},
		{"io error", []string{"mdwizard", "build", "/definitely/missing/recipe.yaml"}, ExitIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv()
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d", code, tt.wantCode)
			}
			if tt.wantCode != ExitSuccess && !strings.HasPrefix(stderr.String(), "Error:") {
				t.Errorf("stderr = %q, want Error: prefix", stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsVerbose - Verbose detection before flag parsing
// ---------------------------------------------------------------------------

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"mdwizard", "build", "-v", "a.yaml"}, true},
		{[]string{"mdwizard", "build", "--verbose"}, true},
		{[]string{"mdwizard", "build", "a.yaml"}, false},
		{[]string{"mdwizard", "version"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			if got := isVerbose(tt.args); got != tt.want {
				t.Errorf("isVerbose(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
