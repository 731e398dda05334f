package mdwizard

import (
	"fmt"
	"strings"
)

// IndentUnit is the literal prefix written once per indentation level.
const IndentUnit = "  "

// HorizontalRule is the dashed line emitted by HR. It is deliberately longer
// than the minimal "---" rule.
const HorizontalRule = "-----------------------------------------"

// Alignment selects the text alignment of a table column.
// The zero value is AlignLeft.
type Alignment int

// Alignment values.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// marker returns the separator-row cell for the column, including the
// trailing pipe. Unknown values render as left.
func (a Alignment) marker() string {
	switch a {
	case AlignCenter:
		return ":-:|"
	case AlignRight:
		return "-:|"
	default:
		return ":-|"
	}
}

// ParseAlignment converts a name to an Alignment (case-insensitive).
// An empty name is AlignLeft.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidAlignment, s)
}

// BadgeKind identifies one of the supported badge templates.
type BadgeKind int

// Supported badge kinds.
const (
	BadgeBuyMeACoffee BadgeKind = iota
	BadgeGitHub
	BadgeTwitter
)

// String returns the canonical badge type name.
func (k BadgeKind) String() string {
	switch k {
	case BadgeBuyMeACoffee:
		return "BuyMeACoffee"
	case BadgeGitHub:
		return "GitHub"
	case BadgeTwitter:
		return "Twitter"
	}
	return fmt.Sprintf("BadgeKind(%d)", int(k))
}

// ParseBadgeKind converts a badge type name to a BadgeKind (case-insensitive).
func ParseBadgeKind(s string) (BadgeKind, error) {
	switch strings.ToLower(s) {
	case "buymeacoffee":
		return BadgeBuyMeACoffee, nil
	case "github":
		return BadgeGitHub, nil
	case "twitter":
		return BadgeTwitter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBadge, s)
}
