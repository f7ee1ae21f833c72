// Package docmeta derives document-level metadata, preferring what the
// container embeds and falling back to first-page layout heuristics.
package docmeta

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/paperchunk/internal/layout"
)

// Meta is the document-level metadata block of a processing result.
type Meta struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"page_count"`
}

const unknown = "Unknown"

// Embedded values shorter than these are treated as absent.
const (
	minPlausibleTitle  = 8
	minPlausibleAuthor = 3
)

// Title candidates of near-equal font size may merge into a two-line
// title as long as the combination stays under this length.
const maxMergedTitle = 250

// bibTokens disqualify a line from being a title or author candidate.
var bibTokens = []string{"doi", "@", "http"}

// Extract derives title and author for the document. Both default to
// "Unknown" when neither embedded metadata nor the heuristics produce a
// value; heuristic failure is never an error.
func Extract(doc *layout.Document) Meta {
	m := Meta{
		Title:     strings.TrimSpace(doc.Meta.Title),
		Author:    strings.TrimSpace(doc.Meta.Author),
		PageCount: doc.PageCount,
	}

	if len(m.Title) < minPlausibleTitle {
		m.Title = titleFromFirstPage(doc)
	}
	if len(m.Author) < minPlausibleAuthor {
		m.Author = authorFromFirstPage(doc)
	}

	if m.Title == "" {
		m.Title = unknown
	}
	if m.Author == "" {
		m.Author = unknown
	}
	return m
}

// titleFromFirstPage ranks first-page lines by font size and takes the
// top candidate, merging in the runner-up when the sizes are near equal.
func titleFromFirstPage(doc *layout.Document) string {
	if len(doc.Pages) == 0 {
		return ""
	}
	var candidates []layout.Line
	for _, line := range doc.Pages[0].Lines {
		text := strings.TrimSpace(line.Text)
		if len(text) <= minPlausibleTitle {
			continue
		}
		if hasBibToken(text) || strings.Count(text, ",") > 2 {
			continue
		}
		candidates = append(candidates, line)
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MaxFontSize > candidates[j].MaxFontSize
	})

	title := strings.TrimSpace(candidates[0].Text)
	if len(candidates) > 1 {
		sizeDiff := candidates[0].MaxFontSize - candidates[1].MaxFontSize
		merged := title + " " + strings.TrimSpace(candidates[1].Text)
		if sizeDiff <= 0.5 && sizeDiff >= -0.5 && len(merged) < maxMergedTitle {
			title = merged
		}
	}
	return title
}

// authorFromFirstPage scans the top of page one for an author-list shaped
// line: comma separated, mostly capitalized, free of bibliographic tokens.
func authorFromFirstPage(doc *layout.Document) string {
	if len(doc.Pages) == 0 {
		return ""
	}
	lines := doc.Pages[0].Lines
	if len(lines) > 30 {
		lines = lines[:30]
	}
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if strings.Count(text, ",") < 2 || hasBibToken(text) {
			continue
		}
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		caps := 0
		for _, w := range words {
			if r := []rune(w); len(r) > 0 && unicode.IsUpper(r[0]) {
				caps++
			}
		}
		if caps*2 >= len(words) {
			return text
		}
	}
	return ""
}

func hasBibToken(text string) bool {
	lower := strings.ToLower(text)
	for _, tok := range bibTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
