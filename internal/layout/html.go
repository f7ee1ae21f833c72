package layout

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// HTMLSource extracts layout records from HTML bytes. Headings h1..h6 map
// to synthetic font sizes; block-level text becomes body lines on page 1.
type HTMLSource struct{}

func (s *HTMLSource) Extract(data []byte, filename string) (*Document, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Format: "html", Err: err}
	}

	out := &Document{}
	if title := findTitle(doc); title != "" {
		out.Meta.Title = title
	}

	spanSizes := make(map[int][]float64)
	page := Page{Number: 1}

	addLine := func(text string, size float64) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		page.Lines = append(page.Lines, Line{Text: text, MaxFontSize: size, Page: 1})
		spanSizes[1] = append(spanSizes[1], size)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := htmlHeadingLevel(n.Data); level > 0 {
				addLine(textContent(n), headingFontSize(level))
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				addLine(textContent(n), baseFontSize)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	if len(page.Lines) > 0 {
		out.Pages = append(out.Pages, page)
	}
	finishPages(out, spanSizes)
	return out, nil
}

func htmlHeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
