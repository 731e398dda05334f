package mdwizard

import (
	"context"
	"strings"

	"github.com/alnah/go-mdwizard/internal/pipeline"
)

// RenderHTML converts markdown into a standalone HTML5 document with GFM
// tables and highlighted code blocks. It is meant for previewing builder
// output; the builder itself never renders.
func RenderHTML(ctx context.Context, markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", ErrEmptyMarkdown
	}

	// Errors are ctx errors or already wrap ErrHTMLConversion.
	return pipeline.NewGoldmarkConverter("").ToHTML(ctx, pipeline.Normalize(markdown))
}

// RenderTerminal renders markdown as ANSI text wrapped at width columns.
// width <= 0 means 80; an empty style means "dark". Styles are glamour's
// standard style names.
func RenderTerminal(markdown string, width int, style string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", ErrEmptyMarkdown
	}

	r, err := pipeline.NewTerminalRenderer(width, style)
	if err != nil {
		return "", err
	}
	return r.Render(pipeline.Normalize(markdown))
}
