package mdwizard

import (
	"io"
	"log/slog"
	"strings"
)

// Builder accumulates Markdown text across chained calls.
// The buffer only grows; Markdown and String read it without resetting it.
// A Builder is not safe for concurrent use.
type Builder struct {
	buf    strings.Builder
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives diagnostics, such as unsupported
// badge types. Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mdwizard: WithLogger logger must not be nil")
	}
	return func(b *Builder) {
		b.logger = l
	}
}

// New creates a Builder with an empty buffer.
func New(opts ...Option) *Builder {
	b := &Builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Block returns a new, independent Builder for composing a fragment
// separately. Only the logger is carried over; the buffer starts empty.
func (b *Builder) Block() *Builder {
	return New(WithLogger(b.logger))
}

// Write appends text with no trailing newline.
func (b *Builder) Write(text string) *Builder {
	return b.WriteAt(0, text)
}

// WriteAt appends level indentation units followed by text.
func (b *Builder) WriteAt(level int, text string) *Builder {
	b.buf.WriteString(indent(level))
	b.buf.WriteString(text)
	return b
}

// Writeln appends text followed by a line break.
func (b *Builder) Writeln(text string) *Builder {
	return b.WritelnAt(0, text)
}

// WritelnAt appends indented text followed by a line break.
func (b *Builder) WritelnAt(level int, text string) *Builder {
	return b.WriteAt(level, text).Br()
}

// Br appends a single newline.
func (b *Builder) Br() *Builder {
	b.buf.WriteByte('\n')
	return b
}

// P appends text as a paragraph followed by a blank line.
func (b *Builder) P(text string) *Builder {
	return b.Writeln(text).Br()
}

// Markdown returns the accumulated text with surrounding whitespace trimmed.
func (b *Builder) Markdown() string {
	return strings.TrimSpace(b.buf.String())
}

// String implements fmt.Stringer. It is identical to Markdown.
func (b *Builder) String() string {
	return b.Markdown()
}

// Len returns the number of bytes buffered so far, before trimming.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// WriteTo writes the trimmed Markdown to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Markdown())
	return int64(n), err
}

// indent returns the literal prefix for an indentation level.
// Negative levels produce no indentation.
func indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, level)
}

// levelAt returns levels[i], or 0 when levels is shorter than i+1.
func levelAt(levels []int, i int) int {
	if i < len(levels) {
		return levels[i]
	}
	return 0
}
