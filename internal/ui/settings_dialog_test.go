package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-batch-downloader/internal/config"
	"github.com/ytget/yt-batch-downloader/internal/download"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	window := app.NewWindow("settings")

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved++ })
	sd.loadCurrentSettings()
	assert.Equal(t, "0", sd.maxParallelEntry.Text)
	assert.Equal(t, download.EngineYTDLP, sd.engineSelect.Selected)

	sd.downloadDirEntry.SetText(" /data/videos ")
	sd.maxParallelEntry.SetText("4")
	sd.engineSelect.SetSelected(download.EngineNative)
	sd.languageSelect.SetSelected("Português")

	sd.onSave(true)

	assert.Equal(t, 1, saved)
	assert.Equal(t, "/data/videos", settings.GetDownloadDirectory())
	assert.Equal(t, 4, settings.GetMaxParallelDownloads())
	assert.Equal(t, download.EngineNative, settings.GetEngine())
	assert.Equal(t, "pt", settings.GetLanguage())
}

func TestSettingsDialog_CancelAndBadInput(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	settings.SetMaxParallelDownloads(3)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), app.NewWindow("settings"), func() { saved++ })
	sd.loadCurrentSettings()

	sd.maxParallelEntry.SetText("many")
	sd.onSave(false)
	assert.Equal(t, 0, saved)

	sd.onSave(true)
	assert.Equal(t, 1, saved)
	assert.Equal(t, 3, settings.GetMaxParallelDownloads())
}
