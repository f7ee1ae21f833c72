// Package splitter turns one section's accumulated text into bounded,
// boundary-respecting chunks with overlap, and maps each chunk back to
// the page where it begins.
package splitter

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config controls chunking behavior.
type Config struct {
	ChunkSize int // Target chunk size in characters.
	Overlap   int // Characters of the previous chunk repeated at the start of the next.
	MinChunk  int // Pieces shorter than this are discarded as noise.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize: 1000,
		Overlap:   200,
		MinChunk:  50,
	}
}

func (c Config) withDefaults() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = 1000
	}
	if c.Overlap < 0 {
		c.Overlap = 0
	}
	if c.MinChunk <= 0 {
		c.MinChunk = 50
	}
	return c
}

// Chunk is one bounded piece of section text with its source page.
type Chunk struct {
	Text string
	Page int
}

// separators is the cascade from coarse to fine. Every separator is kept
// at the end of the piece it closes, so chunk boundaries stay on real
// structural or punctuation boundaries. The empty separator is the
// character-level last resort.
var separators = []string{"\n\n", "\n", ". ", "! ", "? ", "; ", ": ", ", ", " ", ""}

// piece is an intermediate segment with its offset into the cleaned text.
type piece struct {
	text string
	off  int
}

// Split strips the page markers out of a section's tagged text, splits the
// cleaned text on the separator cascade, and returns chunks annotated with
// the page each one starts on. A cascade failure degrades to the sentence
// fallback splitter rather than propagating.
func Split(tagged string, startPage int, cfg Config, log *slog.Logger) []Chunk {
	cfg = cfg.withDefaults()
	if log == nil {
		log = slog.Default()
	}

	cleaned, marks := stripPageTags(tagged)
	if cleaned == "" {
		return nil
	}

	pieces, err := splitCascade(cleaned, cfg.ChunkSize)
	if err != nil {
		log.Warn("cascade split failed, falling back to sentence splitter", "error", err)
		pieces = fallbackPieces(cleaned, cfg.ChunkSize)
	}

	var chunks []Chunk
	for _, p := range pieces {
		text := strings.TrimSpace(p.text)
		if len(text) < cfg.MinChunk {
			continue
		}
		chunks = append(chunks, Chunk{Text: text, Page: pageFor(marks, p.off, startPage)})
	}

	applyOverlap(chunks, cfg.Overlap)
	return chunks
}

func splitCascade(text string, size int) ([]piece, error) {
	return splitRecursive(text, 0, separators, size)
}

// splitRecursive splits text on the first separator that actually divides
// it, merges the resulting pieces greedily up to the size bound, and
// recurses into the next-finer separator only for pieces that still exceed
// the bound.
func splitRecursive(text string, base int, seps []string, size int) ([]piece, error) {
	if text == "" {
		return nil, nil
	}
	if len(text) <= size {
		return []piece{{text, base}}, nil
	}
	if len(seps) == 0 {
		return nil, fmt.Errorf("separator cascade exhausted with %d chars remaining", len(text))
	}

	sep := seps[0]
	if sep == "" {
		// Character-level cuts; only reachable for a single run longer
		// than the bound with no whitespace at all.
		var out []piece
		for off := 0; off < len(text); off += size {
			end := off + size
			if end > len(text) {
				end = len(text)
			}
			out = append(out, piece{text[off:end], base + off})
		}
		return out, nil
	}

	parts := strings.SplitAfter(text, sep)
	if len(parts) == 1 {
		return splitRecursive(text, base, seps[1:], size)
	}

	var out []piece
	off := 0
	segStart := -1
	segEnd := 0
	flush := func() {
		if segStart >= 0 && segEnd > segStart {
			out = append(out, piece{text[segStart:segEnd], base + segStart})
		}
		segStart = -1
	}

	for _, part := range parts {
		n := len(part)
		if n == 0 {
			continue
		}
		if n > size {
			flush()
			sub, err := splitRecursive(part, base+off, seps[1:], size)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			off += n
			continue
		}
		if segStart >= 0 && off+n-segStart > size {
			flush()
		}
		if segStart < 0 {
			segStart = off
		}
		segEnd = off + n
		off += n
	}
	flush()
	return out, nil
}

// applyOverlap prepends the word-aligned tail of each chunk to its
// successor.
func applyOverlap(chunks []Chunk, overlap int) {
	if overlap <= 0 {
		return
	}
	for i := 1; i < len(chunks); i++ {
		tail := overlapTail(chunks[i-1].Text, overlap)
		if tail != "" {
			chunks[i].Text = tail + " " + chunks[i].Text
		}
	}
}

// overlapTail returns up to n trailing characters of prev, advanced to the
// next whitespace boundary so no partial word is carried over.
func overlapTail(prev string, n int) string {
	if prev == "" || n <= 0 {
		return ""
	}
	window := prev
	if len(prev) > n {
		window = prev[len(prev)-n:]
	}
	idx := strings.IndexByte(window, ' ')
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(window[idx:])
}
