// Package dateutil formats dates from token layouts such as "D MMMM YYYY".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidLayout indicates a malformed date layout.
var ErrInvalidLayout = errors.New("invalid date layout")

// MaxLayoutLength bounds layout strings accepted from flags and config.
const MaxLayoutLength = 50

// DefaultLayout is used for "auto" and the empty layout.
const DefaultLayout = "YYYY-MM-DD"

// Presets are named layouts, matched case-insensitively.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens maps layout tokens to Go reference-time components, longest first
// so "MMMM" wins over "MM".
var tokens = []struct {
	token, layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a token layout or preset name into a Go time layout.
// Text in brackets is kept literally: "[Built] YYYY" keeps "Built".
// Characters that are not tokens are kept as-is.
func Layout(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: layout cannot be empty", ErrInvalidLayout)
	}
	if len(s) > MaxLayoutLength {
		return "", fmt.Errorf("%w: layout exceeds %d characters", ErrInvalidLayout, MaxLayoutLength)
	}
	if preset, ok := Presets[strings.ToLower(s)]; ok {
		s = preset
	}

	var out strings.Builder
	for rest := s; rest != ""; {
		if literal, ok := strings.CutPrefix(rest, "["); ok {
			text, after, found := strings.Cut(literal, "]")
			if !found {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidLayout, len(s)-len(rest))
			}
			out.WriteString(text)
			rest = after
			continue
		}
		rest = writeToken(&out, rest)
	}
	return out.String(), nil
}

// writeToken writes the Go layout for the token at the start of s, or its
// first byte when no token matches, and returns the remainder.
func writeToken(out *strings.Builder, s string) string {
	for _, t := range tokens {
		if after, ok := strings.CutPrefix(s, t.token); ok {
			out.WriteString(t.layout)
			return after
		}
	}
	out.WriteByte(s[0])
	return s[1:]
}

// Format renders t with a token layout or preset. "auto" and the empty
// layout select DefaultLayout; "none" yields an empty string.
func Format(t time.Time, layout string) (string, error) {
	switch strings.ToLower(layout) {
	case "none":
		return "", nil
	case "", "auto":
		layout = DefaultLayout
	}
	goLayout, err := Layout(layout)
	if err != nil {
		return "", err
	}
	return t.Format(goLayout), nil
}
