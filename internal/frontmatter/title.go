package frontmatter

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading returns the text of the first markdown heading in
// content, or "" if there is none. Used to derive a "title" entry for
// chapters whose frontmatter lacks one.
func FirstHeading(content string) string {
	src := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return string(h.Text(src))
		}
	}
	return ""
}
