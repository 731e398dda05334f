package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	xhtml "golang.org/x/net/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the Chroma style used for code blocks.
const DefaultHighlightStyle = "github"

// DefaultTitle is the page title used when the document has no heading.
const DefaultTitle = "Document"

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
// The first verb is the escaped title, the second the body.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md    goldmark.Markdown
	style string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// syntax highlighting. An empty style selects DefaultHighlightStyle.
func NewGoldmarkConverter(style string) *GoldmarkConverter {
	if style == "" {
		style = DefaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by HighlightCSS
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for in-document links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Collapsible sections are raw <details> blocks.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md, style: style}
}

// Compile-time interface implementation check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)

// ToHTML converts Markdown content to a standalone HTML5 document with the
// highlight stylesheet injected. The page title is the text of the first
// heading. Goldmark has no context support, so the conversion runs in a
// goroutine and ctx is honored with a select.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		source := []byte(content)
		doc := c.md.Parser().Parse(text.NewReader(source))

		var buf bytes.Buffer
		if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		css, err := HighlightCSS(c.style)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		page := fmt.Sprintf(htmlTemplate, xhtml.EscapeString(pageTitle(doc, source)), buf.String())
		done <- result{html: InjectStyle(page, css)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HighlightCSS returns the class-based stylesheet for a Chroma style.
// Unknown style names fall back to Chroma's default style.
func HighlightCSS(style string) (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// pageTitle returns the plain text of the first heading in doc, or
// DefaultTitle when there is none.
func pageTitle(doc ast.Node, source []byte) string {
	var heading ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if heading == nil {
		return DefaultTitle
	}

	var b bytes.Buffer
	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	if b.Len() == 0 {
		return DefaultTitle
	}
	return b.String()
}
