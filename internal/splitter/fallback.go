package splitter

// fallbackPieces is the degrade path: split on sentence-final boundaries
// only and accumulate sentences up to the size bound. Boundaries are kept
// at the end of the piece they close, like the cascade.
func fallbackPieces(text string, size int) []piece {
	var sentences []piece
	start := 0
	for i := 0; i+1 < len(text); i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && text[i+1] == ' ' {
			sentences = append(sentences, piece{text[start : i+2], start})
			start = i + 2
		}
	}
	if start < len(text) {
		sentences = append(sentences, piece{text[start:], start})
	}

	var out []piece
	segStart := -1
	segEnd := 0
	for _, s := range sentences {
		if segStart >= 0 && s.off+len(s.text)-segStart > size {
			out = append(out, piece{text[segStart:segEnd], segStart})
			segStart = -1
		}
		if segStart < 0 {
			segStart = s.off
		}
		segEnd = s.off + len(s.text)
	}
	if segStart >= 0 {
		out = append(out, piece{text[segStart:segEnd], segStart})
	}
	return out
}
