package pipeline

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkOptions selects the rewrites applied by RewriteLinks.
type LinkOptions struct {
	// BaseDir resolves relative img src attributes to file:// URLs so a page
	// printed away from its source still shows local images. Empty skips images.
	BaseDir string

	// MarkdownToHTML points relative links to .md files at the .html file
	// built next to them. Fragments are kept.
	MarkdownToHTML bool
}

// RewriteLinks applies opts to the img and a elements of an HTML document.
// URLs with a scheme or host, absolute paths and in-page anchors are never
// changed, nor are images that resolve outside BaseDir.
func RewriteLinks(document string, opts LinkOptions) (string, error) {
	if opts.BaseDir == "" && !opts.MarkdownToHTML {
		return document, nil
	}

	var baseDir string
	if opts.BaseDir != "" {
		abs, err := filepath.Abs(opts.BaseDir)
		if err != nil {
			return "", err
		}
		baseDir = abs
	}

	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", err
	}

	walk(root, func(n *html.Node) {
		switch n.DataAtom {
		case atom.Img:
			if baseDir != "" {
				rewriteAttr(n, "src", func(v string) (string, bool) { return fileURL(v, baseDir) })
			}
		case atom.A:
			if opts.MarkdownToHTML {
				rewriteAttr(n, "href", htmlTwin)
			}
		}
	})

	var buf strings.Builder
	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// rewriteAttr replaces the value of key when rewrite reports a change.
func rewriteAttr(n *html.Node, key string, rewrite func(string) (string, bool)) {
	for i, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		if v, ok := rewrite(attr.Val); ok {
			n.Attr[i].Val = v
		}
	}
}

// localRef parses v and reports whether it is a relative reference to a
// local file: no scheme, no host, not rooted, not a bare fragment.
func localRef(v string) (*url.URL, bool) {
	if v == "" || strings.HasPrefix(v, "#") || strings.HasPrefix(v, "/") || strings.HasPrefix(v, `\`) {
		return nil, false
	}
	u, err := url.Parse(v)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return nil, false
	}
	if filepath.IsAbs(filepath.FromSlash(u.Path)) {
		return nil, false
	}
	return u, true
}

// htmlTwin maps "guide.md#setup" to "guide.html#setup".
func htmlTwin(v string) (string, bool) {
	u, ok := localRef(v)
	if !ok {
		return "", false
	}
	ext := path.Ext(u.Path)
	if !strings.EqualFold(ext, ".md") {
		return "", false
	}
	u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
	return u.String(), true
}

// fileURL resolves a relative image reference against baseDir.
func fileURL(v, baseDir string) (string, bool) {
	u, ok := localRef(v)
	if !ok {
		return "", false
	}

	abs := filepath.Join(baseDir, filepath.FromSlash(u.Path))
	rel, err := filepath.Rel(baseDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/docs -> /C:/docs
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), true
}
