package pipeline

import (
	"errors"
	"log/slog"

	"github.com/dgallion1/paperchunk/internal/layout"
	"github.com/dgallion1/paperchunk/internal/processor"
	"github.com/dgallion1/paperchunk/internal/splitter"
)

// Worker runs one document job to completion. Processing a document is a
// single-pass sequential computation, so each job gets exactly one worker
// and no internal concurrency.
type Worker struct {
	log      *slog.Logger
	chunkCfg splitter.Config
}

func NewWorker(log *slog.Logger, chunkCfg splitter.Config) *Worker {
	return &Worker{log: log, chunkCfg: chunkCfg}
}

// Process runs the full pipeline for a job: layout extraction, section
// reconstruction, chunking.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	job.SetStatus(StatusParsing, "parsing")
	src, err := layout.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	doc, err := src.Extract(job.FileData(), job.Filename)
	if err != nil {
		var parseErr *layout.ParseError
		if errors.As(err, &parseErr) {
			log.Error("document parse failed", "format", parseErr.Format, "error", parseErr.Err)
		} else {
			log.Error("layout extraction failed", "error", err)
		}
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	job.SetStatus(StatusProcessing, "sectioning")
	cfg := w.chunkCfg
	if job.ChunkSize > 0 {
		cfg.ChunkSize = job.ChunkSize
	}
	if job.Overlap > 0 {
		cfg.Overlap = job.Overlap
	}

	res := processor.New(cfg, w.log).Process(doc)
	job.SetResult(res)

	log.Info("document processed",
		"pages", res.Metadata.PageCount,
		"sections", len(res.Sections),
		"data_loss_pct", res.Stats.DataLossPercentage,
	)
	job.SetStatus(StatusCompleted, "done")
}
