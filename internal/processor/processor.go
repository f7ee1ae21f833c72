// Package processor runs the full document pipeline: layout records in,
// structured sections and chunks out. Processing is a pure, single-pass
// function of its input; each call builds fresh state.
package processor

import (
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/paperchunk/internal/docmeta"
	"github.com/dgallion1/paperchunk/internal/layout"
	"github.com/dgallion1/paperchunk/internal/section"
	"github.com/dgallion1/paperchunk/internal/splitter"
)

// Processor holds the immutable per-service configuration.
type Processor struct {
	cfg splitter.Config
	log *slog.Logger
}

// New creates a Processor. A nil logger falls back to slog.Default.
func New(cfg splitter.Config, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{cfg: cfg, log: log}
}

// ProcessFile extracts layout records from raw document bytes and
// processes them. Unparseable input returns a *layout.ParseError with no
// partial result.
func (p *Processor) ProcessFile(data []byte, filename string) (*Result, error) {
	src, err := layout.ForFile(filename)
	if err != nil {
		return nil, err
	}
	doc, err := src.Extract(data, filename)
	if err != nil {
		return nil, err
	}
	return p.Process(doc), nil
}

// Process walks the document's lines in order, accumulating them into
// sections and splitting each retained section into chunks.
func (p *Processor) Process(doc *layout.Document) *Result {
	meta := docmeta.Extract(doc)

	acc := section.NewAccumulator()
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			acc.Feed(line, page.MedianFont)
		}
	}

	res := &Result{
		Metadata: meta,
		Sections: make(map[string]*SectionResult),
	}

	retained := 0
	boundaryHits := 0
	totalChunks := 0

	for _, sec := range acc.Finalize() {
		chunks := splitter.Split(sec.Tagged, sec.StartPage, p.cfg, p.log)
		if len(chunks) == 0 {
			continue
		}

		cleaned := splitter.CleanText(sec.Tagged)
		retained += len(cleaned)

		sr := &SectionResult{
			ChunkCount:  len(chunks),
			StartPage:   sec.StartPage,
			Preview:     preview(cleaned),
			TotalLength: len(cleaned),
		}
		chars := 0
		for _, c := range chunks {
			sr.Chunks = append(sr.Chunks, c.Text)
			sr.ChunksWithPages = append(sr.ChunksWithPages, PagedChunk{Text: c.Text, Page: c.Page})
			chars += len(c.Text)
			if endsOnBoundary(c.Text) {
				boundaryHits++
			}
		}
		sr.AvgChunkSize = chars / len(chunks)
		totalChunks += len(chunks)

		name := string(sec.Name)
		res.Sections[name] = sr
		res.order = append(res.order, name)
	}

	res.Stats = Stats{
		TotalTextExtracted:  acc.TotalChars(),
		TotalTextInSections: retained,
	}
	if acc.TotalChars() > 0 {
		loss := float64(acc.TotalChars()-retained) / float64(acc.TotalChars()) * 100
		if loss < 0 {
			loss = 0
		}
		res.Stats.DataLossPercentage = round2(loss)
	}
	if totalChunks > 0 {
		res.Stats.BoundaryQuality = round2(float64(boundaryHits) / float64(totalChunks))
	}

	p.log.Debug("processed document",
		"pages", doc.PageCount,
		"sections", len(res.Sections),
		"chunks", totalChunks,
		"data_loss_pct", res.Stats.DataLossPercentage,
	)
	return res
}

func preview(cleaned string) string {
	if len(cleaned) <= 250 {
		return cleaned
	}
	cut := 250
	for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
		cut--
	}
	return cleaned[:cut]
}

// endsOnBoundary checks for a sentence-final character at the end of a
// trimmed chunk.
func endsOnBoundary(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	switch text[len(text)-1] {
	case '.', '!', '?', ')', ';':
		return true
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
