package section

import (
	"regexp"
	"strings"
	"unicode"
)

// Classification is the outcome of header detection for one line.
type Classification struct {
	Section Name
	// Inline is body text carried on the header line itself, e.g. the
	// sentence after "Abstract:". Empty for bare headers.
	Inline string
}

// Structural limits for header candidates. Anything longer is a paragraph.
const (
	maxHeaderChars  = 150
	maxHeaderWords  = 20
	headerFontRatio = 1.3
)

// numberedRe matches numbered headers like "2.1 Research Methodology".
var numberedRe = regexp.MustCompile(`^\s*(\d+(\.\d+)*)\.?\s*(.+)$`)

// skipTokens mark bibliographic/administrative lines that are never
// headers regardless of typography.
var skipTokens = []string{
	"doi", "http", "@", "received", "revised", "accepted",
	"published", "license", "correspondence", "copyright",
}

// inlineSeparators may follow an alias that carries trailing body text.
const inlineSeparators = ":-."

// Classify decides whether a merged line is a section header, given its
// dominant font size and the page's median font size. Matching precedence:
// exact or numbered alias match first, then alias-with-inline-content,
// then the contextual heuristic gated by header-like cues. Returns false
// for ordinary content lines.
func Classify(text string, maxFont, pageMedian float64) (Classification, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Classification{}, false
	}

	lower := strings.ToLower(text)
	for _, tok := range skipTokens {
		if strings.Contains(lower, tok) {
			return Classification{}, false
		}
	}
	if len(text) > maxHeaderChars || len(strings.Fields(text)) > maxHeaderWords {
		return Classification{}, false
	}

	norm := normalize(text)

	// Exact alias match always wins, independent of font size.
	if name, ok := matchExact(norm); ok {
		return Classification{Section: name}, true
	}
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		if name, ok := matchExact(normalize(m[3])); ok {
			return Classification{Section: name}, true
		}
	}

	// Header carrying its first content on the same line.
	if cls, ok := matchInline(text, lower); ok {
		return cls, true
	}

	if !isHeaderLike(text, maxFont, pageMedian) {
		// Non-header-looking lines already failed the exact match,
		// so they are content.
		return Classification{}, false
	}

	// Numbered headers get the permissive phrase-prefix rule.
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		if name, ok := matchNumbered(normalize(m[3])); ok {
			return Classification{Section: name}, true
		}
		return Classification{}, false
	}

	if name, ok := matchLoose(norm); ok {
		return Classification{Section: name}, true
	}
	return Classification{}, false
}

// matchInline detects headers of the form "<alias><sep> <content>", with
// sep one of ":-.". Numbered variants ("2. Research Methodology and next
// sentence") additionally accept plain whitespace after the alias. The
// remainder becomes the section's first content line, case preserved.
func matchInline(text, lower string) (Classification, bool) {
	for _, e := range aliasTable {
		for _, p := range e.phrases {
			if rest, ok := splitAfterAlias(text, lower, p, false); ok {
				return Classification{Section: e.name, Inline: rest}, true
			}
		}
	}
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		phrase := strings.TrimSpace(m[3])
		phraseLower := strings.ToLower(phrase)
		for _, e := range aliasTable {
			for _, p := range e.phrases {
				if rest, ok := splitAfterAlias(phrase, phraseLower, p, true); ok {
					return Classification{Section: e.name, Inline: rest}, true
				}
			}
		}
	}
	return Classification{}, false
}

// splitAfterAlias returns the trailing content when the line begins with
// the alias followed by a separator. Matching runs on the lowered form;
// the remainder is sliced from the original so casing survives. allowSpace
// admits bare whitespace as the separator (numbered headers only).
func splitAfterAlias(text, lower, alias string, allowSpace bool) (string, bool) {
	if !strings.HasPrefix(lower, alias) || len(lower) <= len(alias) {
		return "", false
	}
	sep := lower[len(alias)]
	if !strings.ContainsRune(inlineSeparators, rune(sep)) && !(allowSpace && sep == ' ') {
		return "", false
	}
	if len(text) != len(lower) {
		text = lower // rare case-folding length change; lose casing, keep content
	}
	rest := strings.TrimLeft(text[len(alias)+1:], inlineSeparators+" ")
	if rest == "" {
		return "", false
	}
	return rest, true
}

// isHeaderLike checks the typographic and structural cues that make a
// line a plausible section title even without an exact alias match.
func isHeaderLike(text string, maxFont, pageMedian float64) bool {
	words := strings.Fields(text)
	if len(words) <= 3 {
		return true
	}
	if numberedRe.MatchString(text) {
		return true
	}
	if pageMedian > 0 && maxFont >= pageMedian*headerFontRatio {
		return true
	}
	if len(words) <= 6 {
		caps := 0
		for _, w := range words {
			if startsUpper(w) {
				caps++
			}
		}
		if float64(caps)/float64(len(words)) >= 0.8 {
			return true
		}
	}
	return strings.HasSuffix(text, ":")
}

func startsUpper(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}
