package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-batch-downloader/internal/download"
)

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", env.LogLevel)
	assert.Empty(t, env.YTDLPPath)
	assert.False(t, env.YTDLPInstall)
	assert.Equal(t, 15*time.Second, env.SearchTimeout)
	assert.Equal(t, 3, env.HTTPRetries)
	assert.Equal(t, 500*time.Millisecond, env.ProgressInterval)
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv("YTB_LOG_LEVEL", "debug")
	t.Setenv("YTB_YTDLP_PATH", "/usr/local/bin/yt-dlp")
	t.Setenv("YTB_YTDLP_INSTALL", "true")
	t.Setenv("YTB_ENGINE", "native")
	t.Setenv("YTB_SEARCH_TIMEOUT", "5s")
	t.Setenv("YTB_HTTP_RETRIES", "0")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "/usr/local/bin/yt-dlp", env.YTDLPPath)
	assert.True(t, env.YTDLPInstall)
	assert.Equal(t, download.EngineNative, env.EngineName(download.EngineYTDLP))
	assert.Equal(t, 5*time.Second, env.SearchTimeout)
	assert.Equal(t, 0, env.HTTPRetries)
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("YTB_PROGRESS_INTERVAL=250ms\nYTB_LOG_LEVEL=warn\n"), 0644))
	t.Setenv("YTB_LOG_LEVEL", "error")
	t.Cleanup(func() { os.Unsetenv("YTB_PROGRESS_INTERVAL") })

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, env.ProgressInterval)
	assert.Equal(t, "error", env.LogLevel, "process environment wins over the file")
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad level", "YTB_LOG_LEVEL", "loud"},
		{"bad engine", "YTB_ENGINE", "wget"},
		{"bad duration", "YTB_SEARCH_TIMEOUT", "soon"},
		{"zero timeout", "YTB_SEARCH_TIMEOUT", "0s"},
		{"negative retries", "YTB_HTTP_RETRIES", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestEnv_EngineName(t *testing.T) {
	env := &Env{}
	assert.Equal(t, download.EngineYTDLP, env.EngineName(download.EngineYTDLP))
}
