package mdwizard

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// fragment holds the optional parameters of a single builder call.
type fragment struct {
	underline bool
	collapsed bool
	level     int
}

// FragmentOption sets an optional parameter on a builder call.
// Options that do not apply to the call are ignored.
type FragmentOption func(*fragment)

// Underline draws a dashed line under an H1 or H2 heading.
func Underline() FragmentOption {
	return func(f *fragment) { f.underline = true }
}

// Collapsed opens a collapsible section in the collapsed state.
func Collapsed() FragmentOption {
	return func(f *fragment) { f.collapsed = true }
}

// Level sets the indentation level of a heading or collapsible section.
func Level(n int) FragmentOption {
	return func(f *fragment) { f.level = n }
}

func applyFragment(opts []FragmentOption) fragment {
	var f fragment
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// H1 appends a level 1 heading followed by a blank line.
// The header is collapsed to a single line first.
func (b *Builder) H1(header string, opts ...FragmentOption) *Builder {
	return b.heading("# ", header, applyFragment(opts))
}

// H2 appends a level 2 heading followed by a blank line.
func (b *Builder) H2(header string, opts ...FragmentOption) *Builder {
	return b.heading("## ", header, applyFragment(opts))
}

// H3 appends a level 3 heading followed by a blank line.
// It takes no underline or indentation.
func (b *Builder) H3(header string) *Builder {
	return b.heading("### ", header, fragment{})
}

func (b *Builder) heading(prefix, header string, f fragment) *Builder {
	header = SingleLine(header)
	b.WritelnAt(f.level, prefix+header)
	if f.underline {
		b.WritelnAt(f.level, strings.Repeat("-", runewidth.StringWidth(header)))
	}
	return b.Br()
}

// Blockquote prefixes every trimmed line of text with "> " and appends the
// result as a paragraph.
func (b *Builder) Blockquote(text string) *Builder {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "> " + strings.TrimSpace(line)
	}
	return b.P(strings.Join(lines, "\n"))
}

// HR appends HorizontalRule as a paragraph.
func (b *Builder) HR() *Builder {
	return b.P(HorizontalRule)
}

// CodeBlock appends a fenced code block followed by a blank line.
// lang may be empty.
func (b *Builder) CodeBlock(code, lang string) *Builder {
	return b.Writeln("```" + lang).
		Writeln(code).
		Writeln("```").
		Br()
}

// Table appends a header row, an alignment row and one row per entry in rows.
// Column counts are not checked; missing alignments render as left.
// No blank line is appended after the last row.
func (b *Builder) Table(columns []string, rows [][]string, alignments ...Alignment) *Builder {
	b.Writeln(tableRow(columns))

	b.Write("|")
	for i := range columns {
		align := AlignLeft
		if i < len(alignments) {
			align = alignments[i]
		}
		b.Write(align.marker())
	}
	b.Br()

	for _, row := range rows {
		b.Writeln(tableRow(row))
	}
	return b
}

func tableRow(cells []string) string {
	return "|" + strings.Join(cells, "|") + "|"
}

// BulletedList appends one "- " item per line, indented by levels[i],
// followed by a blank line. Missing levels are 0.
func (b *Builder) BulletedList(items []string, levels ...int) *Builder {
	for i, item := range items {
		b.WritelnAt(levelAt(levels, i), "- "+item)
	}
	return b.Br()
}

// OrderedList appends items numbered from 1, indented by levels[i],
// followed by a blank line. Numbering runs across the whole call and does
// not restart per nesting level.
func (b *Builder) OrderedList(items []string, levels ...int) *Builder {
	for i, item := range items {
		b.WritelnAt(levelAt(levels, i), strconv.Itoa(i+1)+". "+item)
	}
	return b.Br()
}

// Collapsible opens a <details> disclosure block with a summary line.
// Only the <details> line takes the level; the summary is always indented
// by one IndentUnit. Close it with EndCollapsible; nesting is not tracked.
func (b *Builder) Collapsible(title string, opts ...FragmentOption) *Builder {
	f := applyFragment(opts)
	open := "<details>"
	if f.collapsed {
		open = "<details closed>"
	}
	return b.WritelnAt(f.level, open).
		Writeln(IndentUnit + "<summary>" + title + "</summary>")
}

// EndCollapsible closes the most recent Collapsible with a </details> line
// indented by one IndentUnit, whatever level the section was opened at.
func (b *Builder) EndCollapsible() *Builder {
	return b.Writeln(IndentUnit + "</details>")
}
