package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/logging"
)

// EnvPrefix namespaces process environment variables, e.g. YTB_LOG_LEVEL
const EnvPrefix = "YTB"

// Env holds process-level settings that are not user preferences
type Env struct {
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	YTDLPPath        string        `envconfig:"YTDLP_PATH"`
	YTDLPInstall     bool          `envconfig:"YTDLP_INSTALL" default:"false"`
	Engine           string        `envconfig:"ENGINE"`
	SearchTimeout    time.Duration `envconfig:"SEARCH_TIMEOUT" default:"15s"`
	HTTPRetries      int           `envconfig:"HTTP_RETRIES" default:"3"`
	ProgressInterval time.Duration `envconfig:"PROGRESS_INTERVAL" default:"500ms"`
	ProxyURL         string        `envconfig:"PROXY_URL"`
}

// LoadEnv reads optional dotenv files (".env" when none are given) into the
// environment, then decodes YTB_* variables. Variables already set win over
// file values.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &env, nil
}

// Validate checks the configuration for invalid values.
// Returns an error describing the first invalid setting found.
func (e *Env) Validate() error {
	switch strings.ToLower(strings.TrimSpace(e.LogLevel)) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, "warning", logging.LevelError:
	default:
		return fmt.Errorf("invalid log level: %q", e.LogLevel)
	}

	if e.Engine != "" {
		if _, err := download.NewEngine(e.Engine, download.Config{}); err != nil {
			return err
		}
	}

	if e.SearchTimeout <= 0 {
		return fmt.Errorf("search timeout must be positive: %s", e.SearchTimeout)
	}
	if e.HTTPRetries < 0 {
		return fmt.Errorf("HTTP retries must not be negative: %d", e.HTTPRetries)
	}
	if e.ProgressInterval <= 0 {
		return fmt.Errorf("progress interval must be positive: %s", e.ProgressInterval)
	}
	return nil
}

// EngineName returns the env override when set, otherwise the preference
func (e *Env) EngineName(preferred string) string {
	if e.Engine != "" {
		return e.Engine
	}
	return preferred
}
