package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconSearch   = "🔍"
)

// Progress display texts. They mirror the engine phases and stay in English
// in every language.
const (
	ProgressFormat      = "Progress: %.2f%%"
	ProgressCalculating = "Progress: Calculating..."
	ProgressComplete    = "Download Complete"
	SpeedFormat         = "Speed: %.2f MB/s"
	SpeedIdle           = "Speed: 0 MB/s"
	SizeFormat          = "Total Size: %.2f MB"
	ETAFormat           = "ETA: %d seconds"
	ETACalculating      = "ETA: Calculating..."
	ETACompleted        = "ETA: Completed"
)

// Summary entry layout
const SummaryEntryFormat = "Title: %s\nURL: %s\nStatus: %s\n\n"

// Window and widget sizing
var (
	MainWindowSize    = fyne.NewSize(760, 700)
	SummaryWindowSize = fyne.NewSize(600, 400)
	SettingsSize      = fyne.NewSize(500, 380)
)

const (
	URLInputRows      = 7
	SearchResultsRows = 8
	MB                = 1024 * 1024
)

// Palette
var (
	ColorBackground = color.NRGBA{R: 0x1F, G: 0x1F, B: 0x1F, A: 0xFF}
	ColorInput      = color.NRGBA{R: 0x2B, G: 0x2B, B: 0x2B, A: 0xFF}
	ColorAccent     = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	ColorForeground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorError      = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	ColorWarning    = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
)
