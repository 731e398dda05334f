package pipeline

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
)

// ErrTerminalRender indicates terminal rendering failed.
var ErrTerminalRender = errors.New("terminal rendering failed")

// Terminal rendering defaults.
const (
	DefaultTerminalWidth = 80
	DefaultTerminalStyle = "dark"
)

// TerminalRenderer renders Markdown as ANSI text using glamour.
type TerminalRenderer struct {
	r *glamour.TermRenderer
}

// NewTerminalRenderer creates a renderer that wraps at width columns using
// a glamour standard style ("dark", "light", "notty", "ascii", ...).
// Zero or negative width and empty style select the defaults.
func NewTerminalRenderer(width int, style string) (*TerminalRenderer, error) {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if style == "" {
		style = DefaultTerminalStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: style %q: %v", ErrTerminalRender, style, err)
	}
	return &TerminalRenderer{r: r}, nil
}

// Render renders content.
func (t *TerminalRenderer) Render(content string) (string, error) {
	out, err := t.r.Render(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTerminalRender, err)
	}
	return out, nil
}
