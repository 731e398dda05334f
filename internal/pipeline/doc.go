// Package pipeline renders builder output for previewing.
//
// Two targets are supported:
//   - HTML: Goldmark with GFM tables, footnotes and Chroma syntax highlighting,
//     wrapped in a standalone HTML5 document with the highlight stylesheet
//   - Terminal: Glamour ANSI rendering for reading a document in a shell
//
// Both targets expect Markdown that has been through Normalize. RewriteLinks
// post-processes HTML pages so local images and links to sibling Markdown
// files keep working where the page is written.
package pipeline
