package download

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytnative "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", EngineYTDLP},
		{"yt-dlp", EngineYTDLP},
		{"YTDLP", EngineYTDLP},
		{" native ", EngineNative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(tt.name, Config{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, engine.Name())
		})
	}
}

func TestNewEngine_Unknown(t *testing.T) {
	engine, err := NewEngine("aria2", Config{})
	assert.Nil(t, engine)
	assert.True(t, errors.Is(err, ErrUnknownEngine))
	assert.Contains(t, err.Error(), "aria2")
}

func TestEngineNames(t *testing.T) {
	assert.Equal(t, []string{EngineYTDLP, EngineNative}, EngineNames())
}

func TestSpeedAndETA(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	speed, eta := speedAndETA(2_000_000, 10_000_000, start, start.Add(2*time.Second))
	assert.InDelta(t, 1_000_000, speed, 0.001)
	assert.Equal(t, 8*time.Second, eta)

	speed, eta = speedAndETA(500, 0, start, start.Add(time.Second))
	assert.InDelta(t, 500, speed, 0.001)
	assert.Zero(t, eta, "unknown total has no ETA")

	speed, eta = speedAndETA(0, 100, start, start.Add(time.Second))
	assert.Zero(t, speed)
	assert.Zero(t, eta)

	speed, _ = speedAndETA(100, 200, time.Time{}, start)
	assert.Zero(t, speed, "unknown start time")
}

func TestProgressFromNative(t *testing.T) {
	start := time.Now()
	p := progressFromNative(ytnative.Progress{TotalSize: 1000, DownloadedSize: 250, Percent: 25}, start, start.Add(time.Second))

	assert.Equal(t, model.PhaseDownloading, p.Phase)
	assert.Equal(t, int64(250), p.DownloadedBytes)
	assert.Equal(t, int64(1000), p.TotalBytes)
	assert.InDelta(t, 250, p.Speed, 0.001)
	assert.Equal(t, 3*time.Second, p.ETA)
}
