package pipeline

import "strings"

// InjectStyle inserts css as a <style> block before </head>, or prepends it
// when the document has no head. Empty css leaves the HTML unchanged.
func InjectStyle(htmlContent, css string) string {
	if css == "" {
		return htmlContent
	}

	block := "<style>\n" + sanitizeCSS(css) + "</style>\n"
	if idx := strings.Index(strings.ToLower(htmlContent), "</head>"); idx != -1 {
		return htmlContent[:idx] + block + htmlContent[idx:]
	}
	return block + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
