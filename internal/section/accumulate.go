package section

import (
	"fmt"
	"strings"

	"github.com/dgallion1/paperchunk/internal/layout"
)

// PageTag formats the page marker embedded ahead of every accumulated
// line. It is internal wiring for page back-mapping and never appears in
// emitted chunk text.
func PageTag(page int) string { return fmt.Sprintf("[PAGE %d] ", page) }

// minSectionChars is the untagged length below which a section is dropped
// as noise after the full pass.
const minSectionChars = 30

// keepAlways marks sections retained regardless of length; a genuinely
// tiny abstract is still an abstract.
var keepAlways = map[Name]bool{
	Abstract:    true,
	Conclusions: true,
}

// Section is one finalized accumulation buffer.
type Section struct {
	Name      Name
	StartPage int
	// Tagged is the section text with a page marker ahead of each
	// contributing line, ready for the splitter.
	Tagged string
	// RawLen counts content characters, excluding page markers.
	RawLen int
}

type buffer struct {
	startPage int
	parts     []string
	rawLen    int
}

func (b *buffer) add(page int, text string) {
	b.parts = append(b.parts, PageTag(page)+text)
	b.rawLen += len(text) + 1
}

// Accumulator is the sequential state machine that assigns every merged
// line to the section active when the line is visited. Fresh per document;
// it holds no cross-document state.
type Accumulator struct {
	current    Name
	order      []Name
	buffers    map[Name]*buffer
	totalChars int
}

// NewAccumulator starts in the preamble state with its buffer already
// created at page 1.
func NewAccumulator() *Accumulator {
	a := &Accumulator{
		current: Preamble,
		buffers: map[Name]*buffer{},
	}
	a.buffer(Preamble, 1)
	return a
}

func (a *Accumulator) buffer(name Name, page int) *buffer {
	if b, ok := a.buffers[name]; ok {
		return b
	}
	b := &buffer{startPage: page}
	a.buffers[name] = b
	a.order = append(a.order, name)
	return b
}

// Feed consumes one merged line in document order. Headers switch the
// current section (keeping any inline content); front matter is routed to
// the preamble; everything else lands in the current section.
func (a *Accumulator) Feed(line layout.Line, pageMedian float64) {
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return
	}
	a.totalChars += len(text)

	if cls, ok := Classify(text, line.MaxFontSize, pageMedian); ok {
		a.current = cls.Section
		b := a.buffer(cls.Section, line.Page)
		if cls.Inline != "" {
			b.add(line.Page, cls.Inline)
		}
		return
	}

	if IsFrontMatter(text) {
		a.buffers[Preamble].add(line.Page, text)
		return
	}

	a.buffer(a.current, line.Page).add(line.Page, text)
}

// TotalChars is the character count of every line fed, retained or not.
func (a *Accumulator) TotalChars() int { return a.totalChars }

// Finalize returns the retained sections in creation order. Sections whose
// untagged text is at or below the noise threshold are dropped, except the
// structurally important ones.
func (a *Accumulator) Finalize() []Section {
	var out []Section
	for _, name := range a.order {
		b := a.buffers[name]
		if len(b.parts) == 0 {
			continue
		}
		if b.rawLen <= minSectionChars && !keepAlways[name] {
			continue
		}
		out = append(out, Section{
			Name:      name,
			StartPage: b.startPage,
			Tagged:    strings.Join(b.parts, " "),
			RawLen:    b.rawLen,
		})
	}
	return out
}
