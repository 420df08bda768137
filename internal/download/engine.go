package download

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kataras/golog"

	"github.com/ytget/yt-batch-downloader/internal/logging"
)

// Engine names accepted by NewEngine
const (
	EngineYTDLP  = "yt-dlp"
	EngineNative = "native"
)

// DefaultProgressInterval is how often yt-dlp progress is reported
const DefaultProgressInterval = 500 * time.Millisecond

// ErrUnknownEngine is returned by NewEngine for an unsupported name
var ErrUnknownEngine = errors.New("unknown download engine")

// Config carries the settings shared by all engines
type Config struct {
	// YTDLPPath overrides the yt-dlp executable; empty means look it up on PATH.
	YTDLPPath        string
	ProgressInterval time.Duration

	// Native engine HTTP settings
	HTTPTimeout time.Duration
	HTTPRetries int
	UserAgent   string
	ProxyURL    string

	Logger *golog.Logger
}

// EngineNames returns the supported engine names, default first
func EngineNames() []string {
	return []string{EngineYTDLP, EngineNative}
}

// NewEngine builds the engine registered under name. An empty name selects yt-dlp.
func NewEngine(name string, cfg Config) (Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineYTDLP, "ytdlp":
		return NewYTDLPEngine(cfg), nil
	case EngineNative:
		return NewNativeEngine(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// speedAndETA derives bytes/second and remaining time from a transfer that
// started at started. Unknown values are zero.
func speedAndETA(downloaded, total int64, started, now time.Time) (float64, time.Duration) {
	if started.IsZero() || downloaded <= 0 {
		return 0, 0
	}
	elapsed := now.Sub(started).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}
	speed := float64(downloaded) / elapsed
	if total <= downloaded {
		return speed, 0
	}
	remaining := float64(total-downloaded) / speed
	return speed, time.Duration(remaining * float64(time.Second))
}
