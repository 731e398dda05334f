package mdwizard

// Notes:
// - Badge: tests each template, case-insensitive kinds, missing params,
//   and the log-and-skip path for unsupported kinds

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestBuilder_Badge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     string
		params   []string
		expected string
	}{
		{
			name:     "github",
			kind:     "github",
			params:   []string{"alice", "repo"},
			expected: "[![GitHub](https://img.shields.io/github/followers/alice?style=social)](https://github.com/alice/repo)",
		},
		{
			name:     "github mixed case",
			kind:     "GitHub",
			params:   []string{"alice", "repo"},
			expected: "[![GitHub](https://img.shields.io/github/followers/alice?style=social)](https://github.com/alice/repo)",
		},
		{
			name:     "buy me a coffee",
			kind:     "BuyMeACoffee",
			params:   []string{"bob"},
			expected: "[![Buy Me a Coffee](https://img.shields.io/badge/Donate-Buy%20Me%20a%20Coffee-orange.svg)](https://www.buymeacoffee.com/bob)",
		},
		{
			name:     "twitter",
			kind:     "TWITTER",
			params:   []string{"carol"},
			expected: "[![Twitter](https://img.shields.io/twitter/follow/carol?style=social)](https://twitter.com/carol)",
		},
		{
			name:     "missing repo is empty",
			kind:     "github",
			params:   []string{"alice"},
			expected: "[![GitHub](https://img.shields.io/github/followers/alice?style=social)](https://github.com/alice/)",
		},
		{
			name:     "no params",
			kind:     "twitter",
			expected: "[![Twitter](https://img.shields.io/twitter/follow/?style=social)](https://twitter.com/)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, logs := newTestLogger()
			b := New(WithLogger(logger)).Badge(tt.kind, tt.params...)
			if got := raw(b); got != tt.expected {
				t.Errorf("buffer = %q, want %q", got, tt.expected)
			}
			if logs.Len() != 0 {
				t.Errorf("unexpected diagnostics: %q", logs.String())
			}
		})
	}
}

func TestBuilder_Badge_Unsupported(t *testing.T) {
	t.Parallel()

	logger, logs := newTestLogger()
	b := New(WithLogger(logger)).P("before")
	before := raw(b)

	got := b.Badge("unknown")
	if got != b {
		t.Error("Badge should return the same builder")
	}
	if raw(b) != before {
		t.Errorf("buffer changed from %q to %q", before, raw(b))
	}

	out := logs.String()
	for _, want := range []string{"level=WARN", "badge=unknown", "unsupported badge type"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic missing %q: %q", want, out)
		}
	}
}

func TestBuilder_Badge_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	b := New().Badge("twitter", "a").Write(" ").Badge("twitter", "b")
	if strings.Contains(raw(b), "\n") {
		t.Errorf("badges should be written inline, got %q", raw(b))
	}
}
