package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kataras/golog"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/events"
	"github.com/ytget/yt-batch-downloader/internal/logging"
	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger
func WithLogger(l *golog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithMaxParallel caps concurrent downloads per batch; 0 means one worker per job
func WithMaxParallel(n int) Option {
	return func(d *Dispatcher) { d.SetMaxParallel(n) }
}

// Dispatcher validates download requests and starts one worker per job.
// Dispatch returns as soon as the workers are scheduled; completion is
// reported through the poster.
type Dispatcher struct {
	poster   events.Poster
	logger   *golog.Logger
	validate *validator.Validate

	mu          sync.Mutex
	engine      download.Engine
	maxParallel int
	current     *Batch
}

// NewDispatcher creates a dispatcher that downloads with engine and reports to poster
func NewDispatcher(engine download.Engine, poster events.Poster, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		engine:   engine,
		poster:   poster,
		logger:   logging.Discard(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetEngine replaces the engine used by batches dispatched from now on
func (d *Dispatcher) SetEngine(engine download.Engine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
}

// SetMaxParallel changes the per-batch concurrency cap for future batches
func (d *Dispatcher) SetMaxParallel(n int) {
	if n < 0 {
		n = 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.maxParallel = n
}

// Current returns the most recently dispatched batch, or nil
func (d *Dispatcher) Current() *Batch {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Dispatch validates req, makes sure the output directory exists, creates one
// job per URL and schedules the workers. On a validation error nothing is
// scheduled and the previous batch stays current.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Batch, error) {
	req = req.normalized()
	if err := validateRequest(d.validate, req); err != nil {
		d.logger.Warnf("Rejected request: %v", err)
		return nil, err
	}

	outputDir := platform.ExpandHome(req.OutputDir)
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		d.logger.Errorf("Cannot prepare %s: %v", outputDir, err)
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	batchID := "batch-" + uuid.NewString()
	jobs := make([]model.DownloadJob, len(req.URLs))
	for i, url := range req.URLs {
		jobs[i] = model.DownloadJob{
			ID:        "job-" + uuid.NewString(),
			BatchID:   batchID,
			URL:       url,
			Quality:   req.Quality,
			OutputDir: outputDir,
		}
	}
	b := newBatch(batchID, jobs)

	d.mu.Lock()
	engine := d.engine
	limit := d.maxParallel
	d.current = b
	d.mu.Unlock()

	d.logger.Infof("Dispatching %s: %d job(s), quality %q, engine %s, to %s",
		b.ID, len(jobs), req.Quality.FormatSelector(), engine.Name(), outputDir)

	// Scheduling runs off the caller's goroutine so a parallel cap never blocks it
	go func() {
		g, gctx := errgroup.WithContext(ctx)
		if limit > 0 {
			g.SetLimit(limit)
		}
		for _, job := range jobs {
			job := job
			g.Go(func() error {
				d.runJob(gctx, b, engine, job)
				return nil
			})
		}
		_ = g.Wait()
		state := b.Aggregate()
		d.logger.Infof("Batch %s finished: %d succeeded, %d failed", b.ID, state.Succeeded(), state.Failed())
	}()

	return b, nil
}
