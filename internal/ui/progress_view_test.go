package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress model.Progress
		expected ProgressTexts
	}{
		{
			name: "known total",
			progress: model.Progress{
				Phase:           model.PhaseDownloading,
				DownloadedBytes: 5 * MB,
				TotalBytes:      20 * MB,
				Speed:           2 * MB,
				ETA:             8 * time.Second,
			},
			expected: ProgressTexts{
				Value:    0.25,
				Progress: "Progress: 25.00%",
				Speed:    "Speed: 2.00 MB/s",
				Size:     "Total Size: 20.00 MB",
				ETA:      "ETA: 8 seconds",
			},
		},
		{
			name:     "unknown total",
			progress: model.Progress{Phase: model.PhaseDownloading, DownloadedBytes: MB},
			expected: ProgressTexts{
				Value:    -1,
				Progress: ProgressCalculating,
				Speed:    "Speed: 0.00 MB/s",
				Size:     "Total Size: 0.00 MB",
				ETA:      ETACalculating,
			},
		},
		{
			name:     "finished",
			progress: model.Progress{Phase: model.PhaseFinished, TotalBytes: 20 * MB},
			expected: ProgressTexts{
				Value:    1,
				Progress: ProgressComplete,
				Speed:    SpeedIdle,
				ETA:      ETACompleted,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatProgress(tt.progress))
		})
	}
}

func TestProgressView_KeepsSizeOnFinish(t *testing.T) {
	v := NewProgressView()
	v.Apply(model.Progress{Phase: model.PhaseDownloading, DownloadedBytes: MB, TotalBytes: 4 * MB})
	v.Apply(model.Progress{Phase: model.PhaseFinished})

	assert.Equal(t, 1.0, v.bar.Value)
	assert.Equal(t, ProgressComplete, v.progress.Text)
	assert.Equal(t, "Total Size: 4.00 MB", v.size.Text)

	v.Reset()
	assert.Equal(t, 0.0, v.bar.Value)
	assert.Equal(t, "Progress: 0.00%", v.progress.Text)
}
