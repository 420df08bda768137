package download

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/kataras/golog"
	"github.com/ytget/ytdlp/client"
	ytnative "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// NativeEngine downloads a single progressive stream in-process, without
// yt-dlp or ffmpeg. It cannot merge streams or transcode audio.
type NativeEngine struct {
	httpClient *http.Client
	logger     *golog.Logger
}

// NewNativeEngine creates the native engine with a retrying HTTP client
func NewNativeEngine(cfg Config) *NativeEngine {
	c := client.NewWith(client.Config{
		Timeout:   cfg.HTTPTimeout,
		Retries:   cfg.HTTPRetries,
		UserAgent: cfg.UserAgent,
		ProxyURL:  cfg.ProxyURL,
	})
	return &NativeEngine{
		httpClient: c.HTTPClient,
		logger:     cfg.Logger,
	}
}

// Name returns EngineNative
func (e *NativeEngine) Name() string {
	return EngineNative
}

// Download fetches job.URL into job.OutputDir using the preset's native selector
func (e *NativeEngine) Download(ctx context.Context, job model.DownloadJob, onProgress ProgressFunc) (string, error) {
	quality, ext := job.Quality.NativeSelector()
	started := time.Now()

	dl := ytnative.New().
		WithFormat(quality, ext).
		WithOutputPath(job.OutputDir).
		WithHTTPClient(e.httpClient).
		WithProgress(func(p ytnative.Progress) {
			if onProgress != nil {
				onProgress(progressFromNative(p, started, time.Now()))
			}
		})

	e.logger.Debugf("Native download %s with format %q ext %q", job.URL, quality, ext)

	info, err := dl.Download(ctx, job.URL)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}

	title := strings.TrimSpace(info.Title)
	if onProgress != nil {
		onProgress(model.Progress{Phase: model.PhaseFinished, Title: title})
	}
	return title, nil
}

func progressFromNative(p ytnative.Progress, started, now time.Time) model.Progress {
	out := model.Progress{
		Phase:           model.PhaseDownloading,
		DownloadedBytes: p.DownloadedSize,
		TotalBytes:      p.TotalSize,
	}
	out.Speed, out.ETA = speedAndETA(out.DownloadedBytes, out.TotalBytes, started, now)
	return out
}
