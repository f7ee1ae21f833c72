package splitter

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// pageTagRe matches the page markers the accumulator embeds ahead of each
// line. The trailing space belongs to the marker.
var pageTagRe = regexp.MustCompile(`\[PAGE (\d+)\] `)

// pageMark records where, in the cleaned text, the text of a given page
// begins.
type pageMark struct {
	off  int
	page int
}

// stripPageTags removes every page marker, collapses whitespace runs to
// single spaces, and records the cleaned-text offset each marker maps to.
// This runs before splitting so no chunk boundary can sever a marker from
// the text it tags.
func stripPageTags(tagged string) (string, []pageMark) {
	var b strings.Builder
	b.Grow(len(tagged))
	var marks []pageMark
	pendingSpace := false

	write := func(s string) {
		for _, r := range s {
			if unicode.IsSpace(r) {
				pendingSpace = b.Len() > 0
				continue
			}
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}

	prev := 0
	for _, loc := range pageTagRe.FindAllStringSubmatchIndex(tagged, -1) {
		write(tagged[prev:loc[0]])
		page, _ := strconv.Atoi(tagged[loc[2]:loc[3]])
		off := b.Len()
		if pendingSpace {
			off++ // the deferred space lands before the page's first rune
		}
		marks = append(marks, pageMark{off: off, page: page})
		prev = loc[1]
	}
	write(tagged[prev:])

	return b.String(), marks
}

// CleanText returns the section text with page markers stripped and
// whitespace normalized, without splitting it. Used for previews and
// length accounting.
func CleanText(tagged string) string {
	cleaned, _ := stripPageTags(tagged)
	return cleaned
}

// pageFor returns the page of the latest marker at or before off, or the
// section's start page when no marker precedes it.
func pageFor(marks []pageMark, off, startPage int) int {
	i := sort.Search(len(marks), func(i int) bool { return marks[i].off > off })
	if i == 0 {
		return startPage
	}
	return marks[i-1].page
}
