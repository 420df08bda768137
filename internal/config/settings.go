package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir   = "download_directory"
	KeyMaxParallel   = "max_parallel_downloads"
	KeyQualityPreset = "quality_preset"
	KeyEngine        = "download_engine"
	KeySearchEnabled = "search_enabled"
	KeyLanguage      = "app_language"
)

// Default values
const (
	// DefaultMaxParallel of 0 starts every job of a batch at once
	DefaultMaxParallel   = 0
	MaxParallelLimit     = 32
	DefaultEngine        = download.EngineYTDLP
	DefaultSearchEnabled = false
	DefaultLanguage      = "system"
	FallbackDownloadDir  = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMaxParallelDownloads returns the per-batch download cap; 0 means unlimited
func (s *Settings) GetMaxParallelDownloads() int {
	return clampParallel(s.app.Preferences().IntWithFallback(KeyMaxParallel, DefaultMaxParallel))
}

// SetMaxParallelDownloads stores the cap clamped to 0..MaxParallelLimit
func (s *Settings) SetMaxParallelDownloads(count int) {
	s.app.Preferences().SetInt(KeyMaxParallel, clampParallel(count))
}

func clampParallel(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxParallelLimit {
		return MaxParallelLimit
	}
	return n
}

// GetQualityPreset returns the last chosen preset, or QualityUnset
func (s *Settings) GetQualityPreset() model.QualityPreset {
	q, ok := model.ParseQualityKey(s.app.Preferences().String(KeyQualityPreset))
	if !ok {
		return model.QualityUnset
	}
	return q
}

// SetQualityPreset remembers the chosen preset
func (s *Settings) SetQualityPreset(preset model.QualityPreset) {
	if !preset.IsValid() {
		s.app.Preferences().RemoveValue(KeyQualityPreset)
		return
	}
	s.app.Preferences().SetString(KeyQualityPreset, preset.Key())
}

// GetEngine returns the configured engine name
func (s *Settings) GetEngine() string {
	name := s.app.Preferences().StringWithFallback(KeyEngine, DefaultEngine)
	for _, known := range download.EngineNames() {
		if name == known {
			return name
		}
	}
	return DefaultEngine
}

// SetEngine stores the engine name
func (s *Settings) SetEngine(name string) {
	s.app.Preferences().SetString(KeyEngine, name)
}

// GetSearchEnabled returns whether the search panel is shown
func (s *Settings) GetSearchEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeySearchEnabled, DefaultSearchEnabled)
}

// SetSearchEnabled shows or hides the search panel on next start
func (s *Settings) SetSearchEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeySearchEnabled, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
