// Package layout models a document as page → line → span records, the
// shape every format front-end normalizes to before section detection.
package layout

import (
	"sort"
	"strings"
)

// Span is a contiguous run of text sharing one font size within a line.
type Span struct {
	Text     string
	FontSize float64
}

// Line is a merged visual line of text.
type Line struct {
	Text        string
	MaxFontSize float64
	Page        int
}

// Page holds the merged lines of one page plus its font-size baseline.
type Page struct {
	Number     int
	Lines      []Line
	MedianFont float64
}

// EmbeddedMeta is title/author carried by the container format itself
// (PDF Info dictionary, HTML <title>, ...). Fields may be empty.
type EmbeddedMeta struct {
	Title  string
	Author string
}

// Document is the layout-extraction result handed to the processor.
type Document struct {
	Pages     []Page
	PageCount int
	Meta      EmbeddedMeta
}

// MergeSpans joins the spans of one visual line into its logical text and
// returns the dominant (maximum) font size. Fragments are joined with a
// single space, except that a trailing hyphen on the running text is a
// word break: the hyphen is dropped and the next fragment appended
// directly. Whitespace-only spans are skipped.
func MergeSpans(spans []Span) (string, float64) {
	var text string
	var maxSize float64

	for _, sp := range spans {
		if sp.FontSize > maxSize {
			maxSize = sp.FontSize
		}
		t := strings.TrimSpace(sp.Text)
		if t == "" {
			continue
		}
		switch {
		case strings.HasSuffix(text, "-"):
			text = text[:len(text)-1] + t
		case text != "":
			text += " " + t
		default:
			text = t
		}
	}
	return strings.TrimSpace(text), maxSize
}

// MedianFontSize returns the median of the given sizes: the middle value
// for an odd count, the mean of the two middle values for an even count,
// and 0 for empty input.
func MedianFontSize(sizes []float64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
