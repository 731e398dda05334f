package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Runs of three or more newlines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Code fence: up to three spaces of indent, then ``` or ~~~
	codeFence = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
)

// segment is a run of lines that is either fenced code or regular Markdown.
type segment struct {
	lines []string
	code  bool
}

// Normalize prepares Markdown for rendering: line endings become \n and
// consecutive blank lines collapse to one. Fenced code is kept as written;
// an unclosed fence runs to the end of the document.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")

	var segments []segment
	var cur []string
	var fence string

	for _, line := range strings.Split(content, "\n") {
		m := codeFence.FindStringSubmatch(line)
		if fence == "" {
			cur = append(cur, line)
			if m != nil {
				fence = m[1]
				segments = append(segments, segment{lines: cur})
				cur = nil
			}
			continue
		}
		if m != nil && closesFence(fence, m[1], line[len(m[0]):]) {
			segments = append(segments, segment{lines: cur, code: true})
			cur = []string{line}
			fence = ""
			continue
		}
		cur = append(cur, line)
	}
	segments = append(segments, segment{lines: cur, code: fence != ""})

	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if len(s.lines) == 0 {
			continue
		}
		text := strings.Join(s.lines, "\n")
		if !s.code {
			text = multipleBlankLines.ReplaceAllString(text, "\n\n")
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}

// closesFence reports whether marker, followed by rest, closes a block
// opened with open: same character, at least as long, nothing after it.
func closesFence(open, marker, rest string) bool {
	return marker[0] == open[0] && len(marker) >= len(open) && strings.TrimSpace(rest) == ""
}
