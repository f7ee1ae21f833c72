package layout

import (
	"bytes"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts page/line/span records from PDF bytes using the
// positioned text fragments the PDF content streams carry.
type PDFSource struct{}

// Row grouping and word assembly tolerances, in points.
const (
	rowTolerance   = 3.0
	wordSpaceRatio = 0.3
)

func (s *PDFSource) Extract(data []byte, filename string) (*Document, error) {
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Format: "pdf", Err: err}
	}

	doc := &Document{Meta: pdfEmbeddedMeta(r)}
	spanSizes := make(map[int][]float64)

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		texts := page.Content().Text
		if len(texts) == 0 {
			continue
		}

		p := Page{Number: i}
		for _, row := range groupRows(texts) {
			spans := assembleSpans(row)
			for _, sp := range spans {
				spanSizes[i] = append(spanSizes[i], sp.FontSize)
			}
			text, maxSize := MergeSpans(spans)
			if text == "" {
				continue
			}
			p.Lines = append(p.Lines, Line{Text: text, MaxFontSize: maxSize, Page: i})
		}
		doc.Pages = append(doc.Pages, p)
	}

	finishPages(doc, spanSizes)
	doc.PageCount = numPages
	return doc, nil
}

func pdfEmbeddedMeta(r *pdflib.Reader) EmbeddedMeta {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return EmbeddedMeta{}
	}
	return EmbeddedMeta{
		Title:  strings.TrimSpace(info.Key("Title").Text()),
		Author: strings.TrimSpace(info.Key("Author").Text()),
	}
}

// groupRows buckets text fragments into visual lines by Y coordinate,
// top of page first, left to right within a row.
func groupRows(texts []pdflib.Text) [][]pdflib.Text {
	sorted := make([]pdflib.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > rowTolerance || diff < -rowTolerance {
			return sorted[i].Y > sorted[j].Y // higher Y = higher on page
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdflib.Text
	var current []pdflib.Text
	rowY := 0.0
	for _, t := range sorted {
		if len(current) == 0 || t.Y >= rowY-rowTolerance && t.Y <= rowY+rowTolerance {
			if len(current) == 0 {
				rowY = t.Y
			}
			current = append(current, t)
			continue
		}
		rows = append(rows, current)
		current = []pdflib.Text{t}
		rowY = t.Y
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}

// assembleSpans merges a row's character fragments into word-level spans.
// A new span starts when the horizontal gap exceeds a fraction of the font
// size or when the font size changes.
func assembleSpans(row []pdflib.Text) []Span {
	var spans []Span
	var buf strings.Builder
	var curSize, curEnd float64

	flush := func() {
		if buf.Len() > 0 {
			spans = append(spans, Span{Text: buf.String(), FontSize: curSize})
			buf.Reset()
		}
	}

	for _, t := range row {
		threshold := wordSpaceRatio * t.FontSize
		if threshold == 0 {
			threshold = 1.0
		}
		if buf.Len() > 0 && (t.X-curEnd > threshold || t.FontSize != curSize) {
			flush()
		}
		buf.WriteString(t.S)
		curSize = t.FontSize
		curEnd = t.X + t.W
	}
	flush()
	return spans
}
