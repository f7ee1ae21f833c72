package pipeline

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/paperchunk/internal/config"
	"github.com/dgallion1/paperchunk/internal/splitter"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "j1", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("j1"); got != job {
		t.Errorf("expected same job back, got %v", got)
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %v", got)
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(time.Minute)
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-2 * time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(stale)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("stale") != nil {
		t.Error("expired job not evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("fresh job evicted")
	}
}

func TestJob_StatusAndErrors(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetStatus(StatusParsing, "parsing")
	job.AddError("bad page 3")

	snap := job.Snapshot()
	if snap.Status != StatusParsing || snap.Phase != "parsing" {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "bad page 3" {
		t.Errorf("errors = %v", snap.Errors)
	}
	if job.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not touched")
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	snap := (&Job{ID: "j1"}).Snapshot()
	if snap.Errors == nil {
		t.Error("snapshot errors should marshal as [], not null")
	}
}

func TestJob_SetResultReleasesFileData(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetFileData([]byte("raw document bytes"))
	if job.FileData() == nil {
		t.Fatal("file data not stored")
	}
	job.SetResult(nil)
	if job.FileData() != nil {
		t.Error("file data should be released once the result is set")
	}
}

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("doc"))
	b := ContentHashHex([]byte("doc"))
	c := ContentHashHex([]byte("other"))
	if a != b {
		t.Error("hash not deterministic")
	}
	if a == c {
		t.Error("distinct content collided")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestWorker_ProcessPlainText(t *testing.T) {
	job := &Job{ID: "j1", DocID: "d1", Filename: "paper.txt", Status: StatusQueued}
	job.SetFileData([]byte("Abstract\nWe outline a compact measurement study of repair traffic.\n"))

	NewWorker(testLogger(), splitter.Config{ChunkSize: 200, Overlap: 40, MinChunk: 10}).Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("status = %q, errors = %v", snap.Status, snap.Errors)
	}
	res := job.Result()
	if res == nil {
		t.Fatal("no result on completed job")
	}
	if _, ok := res.Sections["abstract"]; !ok {
		t.Errorf("abstract section missing from result")
	}
	if job.FileData() != nil {
		t.Error("input bytes retained after completion")
	}
}

func TestWorker_UnsupportedFormatFails(t *testing.T) {
	job := &Job{ID: "j1", Filename: "paper.xyz"}
	job.SetFileData([]byte("irrelevant"))

	NewWorker(testLogger(), splitter.DefaultConfig()).Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %q, want failed", snap.Status)
	}
	if len(snap.Errors) == 0 || !strings.Contains(snap.Errors[0], "unsupported") {
		t.Errorf("errors = %v", snap.Errors)
	}
}

func TestOrchestrator_SubmitQueueFull(t *testing.T) {
	cfg := config.Config{
		MaxQueueSize:        1,
		WorkerCount:         1,
		JobTTL:              time.Hour,
		DefaultChunkSize:    1000,
		DefaultChunkOverlap: 200,
		MinChunkChars:       50,
	}
	o := NewOrchestrator(cfg, testLogger())
	// Workers never started, so the second submit must overflow.

	if err := o.Submit(&Job{ID: "j1"}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("queue depth = %d", o.QueueDepth())
	}

	err := o.Submit(&Job{ID: "j2"})
	if err == nil {
		t.Fatal("expected queue-full error")
	}
	if o.GetJob("j2").Snapshot().Status != StatusFailed {
		t.Errorf("overflowed job not marked failed")
	}
}
