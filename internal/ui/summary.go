package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// SummaryText lists every result in completion order
func SummaryText(state model.AggregateState) string {
	var b strings.Builder
	for _, r := range state.Results {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			title = model.UnknownTitle
		}
		fmt.Fprintf(&b, SummaryEntryFormat, title, r.URL, r.StatusText())
	}
	return b.String()
}

// SummaryWindow is the read-only report shown when a batch completes
type SummaryWindow struct {
	window fyne.Window
	text   *widget.Entry
}

// NewSummaryWindow builds the summary window for state. outputDir backs the
// "Open folder" button.
func NewSummaryWindow(app fyne.App, loc *Localization, state model.AggregateState, outputDir string) *SummaryWindow {
	w := app.NewWindow(loc.GetText(KeySummaryTitle))
	w.Resize(SummaryWindowSize)

	heading := canvas.NewText(loc.GetText(KeySummaryTitle), ColorAccent)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.TextSize = 18
	heading.Alignment = fyne.TextAlignCenter

	counts := widget.NewLabel(loc.Format(KeyBatchFinished, state.Succeeded(), state.Failed()))
	counts.Alignment = fyne.TextAlignCenter

	text := widget.NewMultiLineEntry()
	text.SetText(SummaryText(state))
	text.Wrapping = fyne.TextWrapWord
	text.Disable()

	closeBtn := widget.NewButton(loc.GetText(KeyClose), w.Close)
	closeBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(IconFolder+" "+loc.GetText(KeyOpenFolder), func() {
		if err := platform.OpenFolder(outputDir); err != nil {
			dialog.ShowError(err, w)
		}
	})
	if outputDir == "" {
		openBtn.Disable()
	}

	w.SetContent(container.NewBorder(
		container.NewVBox(heading, counts),
		container.NewCenter(container.NewHBox(openBtn, closeBtn)),
		nil, nil,
		text,
	))

	return &SummaryWindow{window: w, text: text}
}

// Show displays the window
func (s *SummaryWindow) Show() {
	s.window.Show()
}

// Text returns the report body
func (s *SummaryWindow) Text() string {
	return s.text.Text
}
