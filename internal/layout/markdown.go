package layout

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource extracts layout records from Markdown bytes using
// goldmark. AST headings map to synthetic font sizes; the first level-1
// heading doubles as the embedded title.
type MarkdownSource struct{}

func (s *MarkdownSource) Extract(data []byte, filename string) (*Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(data))

	out := &Document{}
	spanSizes := make(map[int][]float64)
	page := Page{Number: 1}

	addLine := func(t string, size float64) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		page.Lines = append(page.Lines, Line{Text: t, MaxFontSize: size, Page: 1})
		spanSizes[1] = append(spanSizes[1], size)
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(data))
			if node.Level == 1 && out.Meta.Title == "" {
				out.Meta.Title = title
			}
			addLine(title, headingFontSize(node.Level))
		default:
			addLine(mdText(n, data), baseFontSize)
		}
	}

	if len(page.Lines) > 0 {
		out.Pages = append(out.Pages, page)
	}
	finishPages(out, spanSizes)
	return out, nil
}

// mdText gets the text content of a goldmark AST node.
func mdText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(mdText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
