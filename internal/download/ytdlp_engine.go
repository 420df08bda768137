package download

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/alessio/shellescape"
	"github.com/kataras/golog"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// defaultYTDLPName is the executable looked up on PATH when none is configured
const defaultYTDLPName = "yt-dlp"

// YTDLPEngine runs the yt-dlp executable through go-ytdlp
type YTDLPEngine struct {
	executable string
	interval   time.Duration
	logger     *golog.Logger
}

// NewYTDLPEngine creates the yt-dlp engine
func NewYTDLPEngine(cfg Config) *YTDLPEngine {
	return &YTDLPEngine{
		executable: cfg.YTDLPPath,
		interval:   cfg.ProgressInterval,
		logger:     cfg.Logger,
	}
}

// Name returns EngineYTDLP
func (e *YTDLPEngine) Name() string {
	return EngineYTDLP
}

// command configures yt-dlp for one job: format selector, output template,
// single video only, JSON info on stdout, merge container or audio
// extraction per preset.
func (e *YTDLPEngine) command(job model.DownloadJob) *ytdlp.Command {
	dl := ytdlp.New().
		Format(job.Quality.FormatSelector()).
		Output(job.OutputTemplate()).
		NoPlaylist().
		PrintJSON()

	if merge := job.Quality.MergeFormat(); merge != "" {
		dl.MergeOutputFormat(merge)
	}
	if audio := job.Quality.AudioTranscode(); audio != nil {
		dl.ExtractAudio().
			AudioFormat(audio.Codec).
			AudioQuality(audio.Quality + "K")
	}
	if e.executable != "" {
		dl.SetExecutable(e.executable)
	}
	return dl
}

// commandLine renders dl as the argv yt-dlp is started with
func (e *YTDLPEngine) commandLine(dl *ytdlp.Command, url string) []string {
	name := e.executable
	if name == "" {
		name = defaultYTDLPName
	}
	args := []string{name}
	for _, f := range dl.GetFlagConfig().ToFlags() {
		args = append(args, f.Raw()...)
	}
	return append(args, url)
}

// Download runs yt-dlp for job and returns the resolved title
func (e *YTDLPEngine) Download(ctx context.Context, job model.DownloadJob, onProgress ProgressFunc) (string, error) {
	dl := e.command(job)

	var (
		mu    sync.Mutex
		title string
	)
	dl.ProgressFunc(e.interval, func(update ytdlp.ProgressUpdate) {
		p := progressFromYTDLP(update, time.Now())
		if p.Title != "" {
			mu.Lock()
			title = p.Title
			mu.Unlock()
		}
		if onProgress != nil {
			onProgress(p)
		}
	})

	if e.logger.Level >= golog.DebugLevel {
		e.logger.Debugf("Running: %s", shellescape.QuoteCommand(e.commandLine(dl, job.URL)))
	}

	result, err := dl.Run(ctx, job.URL)
	mu.Lock()
	defer mu.Unlock()
	if t := titleFromResult(result); t != "" {
		title = t
	}
	if err != nil {
		if ctx.Err() != nil {
			return title, ctx.Err()
		}
		return title, errors.New(failureReason(result, err))
	}
	return title, nil
}

func titleFromResult(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 || info[0].Title == nil {
		return ""
	}
	return strings.TrimSpace(*info[0].Title)
}

// progressFromYTDLP converts a go-ytdlp update into a job progress report
func progressFromYTDLP(update ytdlp.ProgressUpdate, now time.Time) model.Progress {
	p := model.Progress{
		Phase:           model.PhaseDownloading,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}
	if update.Status == ytdlp.ProgressStatusFinished {
		p.Phase = model.PhaseFinished
	}
	if update.Info != nil && update.Info.Title != nil {
		p.Title = strings.TrimSpace(*update.Info.Title)
	}

	p.Speed, p.ETA = speedAndETA(p.DownloadedBytes, p.TotalBytes, update.Started, now)
	if eta := update.ETA(); eta > 0 {
		p.ETA = eta
	}
	return p
}

// failureReason prefers the last "ERROR:" line yt-dlp printed over the
// generic exit error
func failureReason(result *ytdlp.Result, err error) string {
	if result != nil {
		if line := lastErrorLine(result.Stderr); line != "" {
			return line
		}
	}
	return err.Error()
}

func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.ReplaceAll(stderr, "\r\n", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	return ""
}

// EnsureYTDLP downloads a yt-dlp build into the go-ytdlp cache when none is
// available and returns the executable path.
func EnsureYTDLP(ctx context.Context, logger *golog.Logger) (string, error) {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", err
	}
	logger.Infof("Using yt-dlp %s at %s", resolved.Version, resolved.Executable)
	return resolved.Executable, nil
}
