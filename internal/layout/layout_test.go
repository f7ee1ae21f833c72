package layout

import (
	"strings"
	"testing"
)

func TestMergeSpans_JoinsWithSpaces(t *testing.T) {
	text, size := MergeSpans([]Span{
		{Text: "Blockchain", FontSize: 10},
		{Text: "is", FontSize: 10},
		{Text: "decentralized", FontSize: 12},
	})
	if text != "Blockchain is decentralized" {
		t.Errorf("unexpected merged text: %q", text)
	}
	if size != 12 {
		t.Errorf("expected max font size 12, got %v", size)
	}
}

func TestMergeSpans_RepairsHyphenBreak(t *testing.T) {
	text, _ := MergeSpans([]Span{
		{Text: "decentral-", FontSize: 10},
		{Text: "ized", FontSize: 10},
	})
	if text != "decentralized" {
		t.Errorf("expected hyphen repair, got %q", text)
	}
}

func TestMergeSpans_SkipsWhitespaceOnlySpans(t *testing.T) {
	text, size := MergeSpans([]Span{
		{Text: "  ", FontSize: 20},
		{Text: "Results", FontSize: 10},
		{Text: "\t", FontSize: 9},
	})
	if text != "Results" {
		t.Errorf("expected whitespace spans skipped, got %q", text)
	}
	// Size still tracks every span, including the skipped ones.
	if size != 20 {
		t.Errorf("expected max font size 20, got %v", size)
	}
}

func TestMergeSpans_Empty(t *testing.T) {
	text, size := MergeSpans(nil)
	if text != "" || size != 0 {
		t.Errorf("expected empty result, got %q / %v", text, size)
	}
}

func TestMedianFontSize(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []float64{9.5}, 9.5},
		{"odd", []float64{12, 9, 10}, 10},
		{"even", []float64{9, 10, 11, 12}, 10.5},
		{"unsorted input untouched", []float64{14, 8, 8}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MedianFontSize(tt.sizes); got != tt.want {
				t.Errorf("MedianFontSize(%v) = %v, want %v", tt.sizes, got, tt.want)
			}
		})
	}
}

func TestTextSource_SplitsPagesOnFormFeed(t *testing.T) {
	data := []byte("First page line one.\nFirst page line two.\n\fSecond page line.\n")
	doc, err := (&TextSource{}).Extract(data, "paper.txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if got := len(doc.Pages[0].Lines); got != 2 {
		t.Errorf("expected 2 lines on page 1, got %d", got)
	}
	if doc.Pages[1].Lines[0].Page != 2 {
		t.Errorf("expected line tagged page 2, got %d", doc.Pages[1].Lines[0].Page)
	}
	if doc.Pages[0].MedianFont <= 0 {
		t.Errorf("expected a median font baseline, got %v", doc.Pages[0].MedianFont)
	}
}

func TestMarkdownSource_HeadingsGetLargerFont(t *testing.T) {
	src := []byte("# A Study of Things\n\nSome body text that follows the title.\n\n## Introduction\n\nMore body text.\n")
	doc, err := (&MarkdownSource{}).Extract(src, "paper.md")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if doc.Meta.Title != "A Study of Things" {
		t.Errorf("expected first h1 as embedded title, got %q", doc.Meta.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	var heading, body *Line
	for i := range doc.Pages[0].Lines {
		l := &doc.Pages[0].Lines[i]
		if l.Text == "Introduction" {
			heading = l
		}
		if strings.HasPrefix(l.Text, "More body") {
			body = l
		}
	}
	if heading == nil || body == nil {
		t.Fatalf("missing expected lines, got %+v", doc.Pages[0].Lines)
	}
	if heading.MaxFontSize <= body.MaxFontSize {
		t.Errorf("heading font %v not larger than body font %v", heading.MaxFontSize, body.MaxFontSize)
	}
}

func TestHTMLSource_TitleAndHeadings(t *testing.T) {
	page := []byte(`<html><head><title>Paper Title</title></head><body>
		<h2>Results</h2>
		<p>The experiment produced numbers.</p>
		<script>ignored()</script>
	</body></html>`)
	doc, err := (&HTMLSource{}).Extract(page, "paper.html")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if doc.Meta.Title != "Paper Title" {
		t.Errorf("expected embedded title, got %q", doc.Meta.Title)
	}
	if len(doc.Pages) != 1 || len(doc.Pages[0].Lines) != 2 {
		t.Fatalf("expected 2 lines on 1 page, got %+v", doc.Pages)
	}
	if doc.Pages[0].Lines[0].MaxFontSize <= doc.Pages[0].Lines[1].MaxFontSize {
		t.Errorf("expected h2 to out-size the paragraph")
	}
}

func TestForFile(t *testing.T) {
	if _, err := ForFile("paper.pdf"); err != nil {
		t.Errorf("pdf should be supported: %v", err)
	}
	if _, err := ForFile("archive.zip"); err == nil {
		t.Errorf("expected error for unsupported extension")
	}
	if !IsSupportedExtension("notes.MD") {
		t.Errorf("extension check should be case-insensitive")
	}
}
