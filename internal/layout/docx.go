package layout

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXSource extracts layout records from .docx bytes. Word documents
// carry no page geometry here, so everything lands on page 1 and heading
// styles are mapped to synthetic font sizes.
type DOCXSource struct{}

func (s *DOCXSource) Extract(data []byte, filename string) (*Document, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Format: "docx", Err: err}
	}

	out := &Document{}
	spanSizes := make(map[int][]float64)
	page := Page{Number: 1}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		size := baseFontSize
		if level := docxHeadingLevel(para); level > 0 {
			size = headingFontSize(level)
		}
		page.Lines = append(page.Lines, Line{Text: text, MaxFontSize: size, Page: 1})
		spanSizes[1] = append(spanSizes[1], size)
	}

	if len(page.Lines) > 0 {
		out.Pages = append(out.Pages, page)
	}
	finishPages(out, spanSizes)
	return out, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, "Heading"+string(rune('0'+level))) ||
			strings.EqualFold(style, "heading "+string(rune('0'+level))) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
