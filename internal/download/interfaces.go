package download

import (
	"context"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// ProgressFunc receives transfer reports for a single job.
type ProgressFunc func(model.Progress)

// Engine performs extraction and transfer for one job.
//
// Download blocks until the file is written (and post-processed) or the
// attempt fails. It returns the video title when it was resolved, even on
// failure, and a human-readable error on failure.
type Engine interface {
	Name() string
	Download(ctx context.Context, job model.DownloadJob, onProgress ProgressFunc) (string, error)
}
