package layout

import (
	"bufio"
	"strings"
)

// TextSource handles plain text. Every non-empty line becomes a body line
// at the base font size; form feeds separate pages.
type TextSource struct{}

func (s *TextSource) Extract(data []byte, filename string) (*Document, error) {
	out := &Document{}
	spanSizes := make(map[int][]float64)

	for i, chunk := range strings.Split(string(data), "\f") {
		pageNo := i + 1
		page := Page{Number: pageNo}

		scanner := bufio.NewScanner(strings.NewReader(chunk))
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			page.Lines = append(page.Lines, Line{Text: text, MaxFontSize: baseFontSize, Page: pageNo})
			spanSizes[pageNo] = append(spanSizes[pageNo], baseFontSize)
		}
		if err := scanner.Err(); err != nil {
			return nil, &ParseError{Format: "txt", Err: err}
		}
		if len(page.Lines) > 0 {
			out.Pages = append(out.Pages, page)
		}
	}

	finishPages(out, spanSizes)
	return out, nil
}
