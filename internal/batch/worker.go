package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/events"
	"github.com/ytget/yt-batch-downloader/internal/model"
)

// errPanic wraps a panic recovered from an engine
var errPanic = errors.New("download panicked")

// titleTracker remembers the last title seen in progress reports; the engine
// may report progress from its own goroutine
type titleTracker struct {
	mu    sync.Mutex
	title string
}

func (t *titleTracker) set(title string) {
	if title = strings.TrimSpace(title); title == "" {
		return
	}
	t.mu.Lock()
	t.title = title
	t.mu.Unlock()
}

func (t *titleTracker) get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title
}

// runJob downloads one job and records exactly one result for it. The worker
// that completes the batch posts the summary.
func (d *Dispatcher) runJob(ctx context.Context, b *Batch, engine download.Engine, job model.DownloadJob) {
	log := d.logger
	log.Debugf("Job %s started: %s", job.ID, job.URL)

	seen := &titleTracker{}
	onProgress := func(p model.Progress) {
		p.JobID = job.ID
		seen.set(p.Title)
		d.poster.Post(events.Event{
			Kind:     events.KindProgress,
			BatchID:  b.ID,
			JobID:    job.ID,
			Progress: p,
		})
	}

	title, err := safeDownload(ctx, engine, job, onProgress)

	result := model.DownloadResult{
		JobID:      job.ID,
		URL:        job.URL,
		Title:      firstNonEmpty(title, seen.get(), model.UnknownTitle),
		FinishedAt: time.Now(),
	}
	if err != nil {
		result.Status = model.ResultFailed
		result.Reason = err.Error()
		log.Errorf("Job %s failed (%s): %v", job.ID, job.URL, err)
	} else {
		result.Status = model.ResultSuccess
		log.Infof("Job %s done: %s", job.ID, result.Title)
	}

	if b.agg.Record(result) {
		d.poster.Post(events.Event{
			Kind:    events.KindSummary,
			BatchID: b.ID,
			Summary: b.agg.State(),
		})
	}
}

// safeDownload converts an engine panic into an error so the job still
// records a result
func safeDownload(ctx context.Context, engine download.Engine, job model.DownloadJob, onProgress download.ProgressFunc) (title string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return engine.Download(ctx, job, onProgress)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
