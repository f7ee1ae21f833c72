package processor

import "github.com/dgallion1/paperchunk/internal/docmeta"

// Result is the full structured output for one processed document.
type Result struct {
	Metadata docmeta.Meta              `json:"metadata"`
	Sections map[string]*SectionResult `json:"sections"`
	Stats    Stats                     `json:"stats"`

	// order preserves document order of the sections for flattening;
	// the JSON map alone does not.
	order []string
}

// SectionResult is one reconstructed section with its chunk list.
type SectionResult struct {
	Chunks          []string     `json:"chunks"`
	ChunkCount      int          `json:"chunk_count"`
	StartPage       int          `json:"start_page"`
	Preview         string       `json:"preview"`
	TotalLength     int          `json:"total_length"`
	AvgChunkSize    int          `json:"avg_chunk_size"`
	ChunksWithPages []PagedChunk `json:"chunks_with_pages"`
}

// PagedChunk pairs a chunk's text with the page it starts on.
type PagedChunk struct {
	Text string `json:"text"`
	Page int    `json:"page"`
}

// Stats aggregates extraction accounting for the document.
type Stats struct {
	TotalTextExtracted  int     `json:"total_text_extracted"`
	TotalTextInSections int     `json:"total_text_in_sections"`
	DataLossPercentage  float64 `json:"data_loss_percentage"`
	// BoundaryQuality is the fraction of chunks ending on sentence-final
	// punctuation, a structural health metric.
	BoundaryQuality float64 `json:"boundary_quality"`
}

// ChunkMeta annotates one flattened chunk for an embedding/indexing
// consumer.
type ChunkMeta struct {
	Section              string `json:"section"`
	Page                 int    `json:"page"`
	StartPage            int    `json:"start_page"`
	ChunkIndex           int    `json:"chunk_index"`
	ChunkGlobalID        int    `json:"chunk_global_id"`
	TotalChunksInSection int    `json:"total_chunks_in_section"`
	PaperTitle           string `json:"paper_title"`
	PaperAuthor          string `json:"paper_author"`
	ChunkLength          int    `json:"chunk_length"`
}

// MetaChunk is one entry of the flattened chunk list.
type MetaChunk struct {
	Text     string    `json:"text"`
	Metadata ChunkMeta `json:"metadata"`
}

// ChunksWithMetadata flattens all sections' chunks in document order into
// one list with a monotonically increasing global ID.
func (r *Result) ChunksWithMetadata() []MetaChunk {
	var out []MetaChunk
	globalID := 0
	for _, name := range r.order {
		sec, ok := r.Sections[name]
		if !ok {
			continue
		}
		for i, pc := range sec.ChunksWithPages {
			out = append(out, MetaChunk{
				Text: pc.Text,
				Metadata: ChunkMeta{
					Section:              name,
					Page:                 pc.Page,
					StartPage:            sec.StartPage,
					ChunkIndex:           i,
					ChunkGlobalID:        globalID,
					TotalChunksInSection: sec.ChunkCount,
					PaperTitle:           r.Metadata.Title,
					PaperAuthor:          r.Metadata.Author,
					ChunkLength:          len(pc.Text),
				},
			})
			globalID++
		}
	}
	return out
}
