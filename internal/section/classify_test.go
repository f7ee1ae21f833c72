package section

import (
	"strings"
	"testing"
)

func TestClassify_NumberedExactAlias(t *testing.T) {
	cls, ok := Classify("2.1 Research Methodology", 10, 10)
	if !ok {
		t.Fatal("expected header")
	}
	if cls.Section != Methodology {
		t.Errorf("got %q, want methodology", cls.Section)
	}
	if cls.Inline != "" {
		t.Errorf("expected no inline content, got %q", cls.Inline)
	}
}

func TestClassify_ExactAliasIgnoresFont(t *testing.T) {
	// A bare alias is a header even in body type.
	cls, ok := Classify("Introduction", 9, 12)
	if !ok || cls.Section != Introduction {
		t.Fatalf("got %+v / %v", cls, ok)
	}
	// Punctuation and case are normalized away.
	cls, ok = Classify("REFERENCES.", 9, 12)
	if !ok || cls.Section != References {
		t.Fatalf("got %+v / %v", cls, ok)
	}
}

func TestClassify_InlineHeaderPreservesCase(t *testing.T) {
	cls, ok := Classify("Abstract: Blockchain technology enables decentralized ledgers.", 10, 10)
	if !ok {
		t.Fatal("expected header")
	}
	if cls.Section != Abstract {
		t.Errorf("got %q, want abstract", cls.Section)
	}
	if cls.Inline != "Blockchain technology enables decentralized ledgers." {
		t.Errorf("inline content mangled: %q", cls.Inline)
	}
}

func TestClassify_NumberedInlineHeader(t *testing.T) {
	cls, ok := Classify("2. Methods We sampled the full cohort over six weeks.", 10, 10)
	if !ok {
		t.Fatal("expected header")
	}
	if cls.Section != Methodology {
		t.Errorf("got %q, want methodology", cls.Section)
	}
	if cls.Inline != "We sampled the full cohort over six weeks." {
		t.Errorf("inline content mangled: %q", cls.Inline)
	}
}

func TestClassify_AuthorListIsNotHeader(t *testing.T) {
	if _, ok := Classify("John Smith, Jane Doe, Robert Lee", 10, 10); ok {
		t.Error("author list misclassified as header")
	}
}

func TestClassify_SkipTokensVeto(t *testing.T) {
	lines := []string{
		"https://doi.org/10.1234/example",
		"Received: 12 January 2024",
		"Correspondence: author@example.edu",
		"Copyright 2024 The Authors",
	}
	for _, line := range lines {
		if _, ok := Classify(line, 20, 10); ok {
			t.Errorf("vetoed line classified as header: %q", line)
		}
	}
}

func TestClassify_LongLinesAreContent(t *testing.T) {
	long := strings.Repeat("word ", 40)
	if _, ok := Classify(long, 20, 10); ok {
		t.Error("paragraph-length line classified as header")
	}
	if _, ok := Classify(long[:140]+" results", 20, 10); ok {
		t.Error("line over the word limit classified as header")
	}
}

func TestClassify_FontRatioGatesLooseMatch(t *testing.T) {
	line := "key findings from clinical trials"

	cls, ok := Classify(line, 14, 10)
	if !ok || cls.Section != Results {
		t.Fatalf("oversized line should loose-match results, got %+v / %v", cls, ok)
	}

	if _, ok := Classify(line, 10, 10); ok {
		t.Error("body-sized line without header cues should stay content")
	}
}

func TestClassify_ShortNonAliasIsContent(t *testing.T) {
	// Header-like by word count, but no alias matches.
	if _, ok := Classify("Total energy consumed", 10, 10); ok {
		t.Error("short non-alias line classified as header")
	}
}

func TestClassify_NumberedPrefix(t *testing.T) {
	cls, ok := Classify("3. Results for the primary cohort", 10, 10)
	if !ok || cls.Section != Results {
		t.Fatalf("got %+v / %v", cls, ok)
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("  2.1  Research   METHODOLOGY! "); got != "21 research methodology" {
		t.Errorf("normalize: %q", got)
	}
}

func TestContainsPhrase_WordAligned(t *testing.T) {
	if !containsPhrase("summary of findings", "findings") {
		t.Error("expected word-aligned match")
	}
	if containsPhrase("methodological concerns", "method") {
		t.Error("substring inside a word must not match")
	}
}

func TestAliasTable_SpecificPhrasesFirst(t *testing.T) {
	// "Results and Discussion" must resolve before the bare "results" prefix
	// could claim it.
	cls, ok := Classify("Results and Discussion", 10, 10)
	if !ok || cls.Section != Results {
		t.Fatalf("got %+v / %v", cls, ok)
	}
	cls, ok = Classify("Discussion and Conclusions", 10, 10)
	if !ok || cls.Section != Conclusions {
		t.Fatalf("got %+v / %v", cls, ok)
	}
}

func TestIsFrontMatter(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"John Smith, Jane Doe, Robert Lee", true},
		{"Published: 3 March 2024 by MDPI, Basel, Switzerland", true},
		{"This work is licensed under CC BY 4.0", true},
		{"Academic Editor: Pat Morgan", true},
		{"The experiment ran for six weeks in total.", false},
		{"however, the data, once cleaned, converged", false},
	}
	for _, tt := range tests {
		if got := IsFrontMatter(tt.text); got != tt.want {
			t.Errorf("IsFrontMatter(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
