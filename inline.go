package mdwizard

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// InlineCode wraps code in backticks.
func InlineCode(code string) string {
	return "`" + code + "`"
}

// InlineItalic wraps s in single asterisks.
func InlineItalic(s string) string {
	return "*" + s + "*"
}

// InlineBold wraps s in double asterisks.
func InlineBold(s string) string {
	return "**" + s + "**"
}

// Link returns [text](url), or [text](url "title") when title is not empty.
func Link(url, text, title string) string {
	if title != "" {
		return "[" + text + "](" + url + ` "` + title + `")`
	}
	return "[" + text + "](" + url + ")"
}

// Image returns ![altText](url), with an optional title like Link.
func Image(url, altText, title string) string {
	return "!" + Link(url, altText, title)
}

// SingleLine collapses every run of whitespace, line breaks included, into a
// single space and trims the result. The byte order mark U+FEFF counts as
// whitespace.
// Panics if text is not valid UTF-8: heading text must be text.
func SingleLine(text string) string {
	if !utf8.ValidString(text) {
		panic("mdwizard: SingleLine input is not valid UTF-8")
	}
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// The methods below mirror the package functions so inline fragments can be
// built from the same value that is being chained. None touch the buffer.

// InlineCode is the method form of InlineCode.
func (b *Builder) InlineCode(code string) string { return InlineCode(code) }

// InlineItalic is the method form of InlineItalic.
func (b *Builder) InlineItalic(s string) string { return InlineItalic(s) }

// InlineBold is the method form of InlineBold.
func (b *Builder) InlineBold(s string) string { return InlineBold(s) }

// Link is the method form of Link.
func (b *Builder) Link(url, text, title string) string { return Link(url, text, title) }

// Image is the method form of Image.
func (b *Builder) Image(url, altText, title string) string { return Image(url, altText, title) }

// SingleLine is the method form of SingleLine.
func (b *Builder) SingleLine(text string) string { return SingleLine(text) }
