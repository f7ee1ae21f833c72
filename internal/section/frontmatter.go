package section

import "strings"

// frontMatterKeywords flag editorial-process, licensing and publisher
// boilerplate that belongs to the preamble wherever it appears.
var frontMatterKeywords = []string{
	"doi", "http", "license", "academic editor", "received",
	"revised", "accepted", "published", "correspondence", "copyright",
	"basel", "mdpi", "elsevier", "springer", "wiley",
}

// IsFrontMatter reports whether a non-header line is front matter: it
// carries a bibliographic keyword, or it is shaped like an author list
// (comma-heavy, short, mostly capitalized names).
func IsFrontMatter(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range frontMatterKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	words := strings.Fields(text)
	if strings.Count(text, ",") >= 2 && len(words) <= 8 && len(words) > 0 {
		caps := 0
		for _, w := range words {
			if len(w) > 1 && startsUpper(w) {
				caps++
			}
		}
		return caps >= len(words)/3
	}
	return false
}
