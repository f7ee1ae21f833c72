package layout

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source converts raw document bytes into layout records.
type Source interface {
	Extract(data []byte, filename string) (*Document, error)
}

// ParseError reports unparseable or corrupt document bytes. No partial
// layout is returned alongside it.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// ForFile returns the appropriate layout source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".txt":
		return &TextSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Synthetic font sizes for formats without typographic layout. Headings
// get sizes that clear the 1.3x-of-median bar the classifier uses.
const baseFontSize = 10.0

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 18
	case 2:
		return 16
	case 3:
		return 14.5
	default:
		return 13.5
	}
}

// finishPages computes the per-page median font baseline. Front-ends that
// build pages from synthetic sizes still go through here so the classifier
// sees a consistent Document.
func finishPages(doc *Document, spanSizes map[int][]float64) {
	for i := range doc.Pages {
		doc.Pages[i].MedianFont = MedianFontSize(spanSizes[doc.Pages[i].Number])
	}
	doc.PageCount = len(doc.Pages)
}
