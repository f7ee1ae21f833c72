// Package section reconstructs the logical structure of an academic paper
// from merged layout lines: it classifies section headers, filters front
// matter, and accumulates each line into the section active at the time
// the line is read.
package section

import "strings"

// Name is a canonical section tag.
type Name string

const (
	Preamble     Name = "preamble"
	Abstract     Name = "abstract"
	Introduction Name = "introduction"
	Methodology  Name = "methodology"
	Results      Name = "results"
	Conclusions  Name = "conclusions"
	References   Name = "references"
	Unknown      Name = "unknown"
)

// aliasEntry maps one canonical name to its ordered match phrases. Phrases
// are stored normalized (lower case, no punctuation).
type aliasEntry struct {
	name    Name
	phrases []string
}

// aliasTable is the immutable alias table, scanned in order. More specific
// phrases come before their prefixes so that "results and discussion"
// cannot be shadowed by "results".
var aliasTable = []aliasEntry{
	{Abstract, []string{"abstract"}},
	{Introduction, []string{"introduction"}},
	{Methodology, []string{
		"materials and methods",
		"research methodology",
		"research methods",
		"experimental setup",
		"methodology",
		"methods",
		"method",
		"approach",
	}},
	{Results, []string{
		"results and discussion",
		"results",
		"findings",
		"analysis",
		"outcomes",
	}},
	{Conclusions, []string{
		"discussion and conclusions",
		"conclusion and future work",
		"concluding remarks",
		"conclusions",
		"conclusion",
		"future work",
		"summary",
	}},
	{References, []string{
		"references",
		"bibliography",
		"acknowledgments",
		"acknowledgements",
		"acknowledgment",
		"acknowledgement",
	}},
}

// normalize lowers the text and strips punctuation, the comparison form
// for all alias matching.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// matchExact returns the canonical name whose phrase equals the normalized
// text exactly.
func matchExact(norm string) (Name, bool) {
	for _, e := range aliasTable {
		for _, p := range e.phrases {
			if norm == p {
				return e.name, true
			}
		}
	}
	return "", false
}

// matchLoose applies the header-like-context rules: exact phrase, phrase
// prefix bounded to three extra words, or a word-aligned phrase occurrence
// anywhere in the text.
func matchLoose(norm string) (Name, bool) {
	words := len(strings.Fields(norm))
	for _, e := range aliasTable {
		for _, p := range e.phrases {
			if norm == p {
				return e.name, true
			}
			if strings.HasPrefix(norm, p+" ") && words <= len(strings.Fields(p))+3 {
				return e.name, true
			}
			if containsPhrase(norm, p) {
				return e.name, true
			}
		}
	}
	return "", false
}

// matchNumbered applies the permissive rule for numbered headers: exact
// phrase or phrase prefix.
func matchNumbered(norm string) (Name, bool) {
	for _, e := range aliasTable {
		for _, p := range e.phrases {
			if norm == p || strings.HasPrefix(norm, p+" ") {
				return e.name, true
			}
		}
	}
	return "", false
}

// containsPhrase reports a word-aligned occurrence of phrase in norm.
func containsPhrase(norm, phrase string) bool {
	idx := strings.Index(norm, phrase)
	for idx >= 0 {
		beforeOK := idx == 0 || norm[idx-1] == ' '
		end := idx + len(phrase)
		afterOK := end == len(norm) || norm[end] == ' '
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(norm[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}
