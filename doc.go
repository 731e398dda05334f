// Package mdwizard builds Markdown documents from chained calls.
//
// # Quick Start
//
// Create a builder, append fragments, and read the result:
//
//	b := mdwizard.New()
//	b.H1("Release Notes", mdwizard.Underline()).
//	    P("Highlights of this release.").
//	    BulletedList([]string{"Faster tables", "New badges"}).
//	    CodeBlock("go get example.com/tool@latest", "sh")
//
//	os.WriteFile("NOTES.md", []byte(b.Markdown()), 0o644)
//
// Every block operation appends one fragment and returns the same *Builder.
// The buffer only grows. Markdown and String return it with surrounding
// whitespace trimmed and can be called at any time without side effects.
//
// # Fragments
//
// Block fragments written to the buffer:
//
//   - Write, WriteAt, Writeln, WritelnAt, Br: raw text and line breaks
//   - P: a paragraph followed by a blank line
//   - H1, H2, H3: headings; H1 and H2 accept Underline and Level
//   - Blockquote, HR, CodeBlock
//   - Table: header row, alignment row (AlignLeft, AlignCenter, AlignRight)
//     and body rows
//   - BulletedList, OrderedList: items with optional per-item levels
//   - Collapsible, EndCollapsible: <details> disclosure blocks
//   - Badge: BuyMeACoffee, GitHub and Twitter shields
//
// Inline helpers return strings and never touch the buffer: InlineCode,
// InlineItalic, InlineBold, Link, Image and SingleLine.
//
// # Indentation
//
// A level is a literal prefix of IndentUnit (two spaces) per level. It is
// not a structural nesting marker; callers decide what indentation means.
//
// # Permissive Input
//
// Inputs are not validated. Tables accept rows of any length, missing list
// levels default to 0 and missing alignments to AlignLeft. Unsupported badge
// types are logged through the builder's *slog.Logger (see WithLogger) and
// leave the buffer unchanged.
//
// # Previews
//
// RenderHTML and RenderTerminal turn finished Markdown into a standalone HTML
// page (Goldmark, Chroma) or ANSI text (Glamour) for inspection.
package mdwizard
