package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// ProgressTexts is what the progress area shows for one report
type ProgressTexts struct {
	Value    float64 // 0..1, negative leaves the bar as is
	Progress string
	Speed    string
	Size     string
	ETA      string
}

// FormatProgress renders a progress report. Size is left empty on finish so
// the last known total stays visible.
func FormatProgress(p model.Progress) ProgressTexts {
	if p.Phase == model.PhaseFinished {
		return ProgressTexts{
			Value:    1,
			Progress: ProgressComplete,
			Speed:    SpeedIdle,
			ETA:      ETACompleted,
		}
	}

	out := ProgressTexts{Value: -1, Progress: ProgressCalculating}
	if pct, ok := p.Percent(); ok {
		out.Value = pct / 100
		out.Progress = fmt.Sprintf(ProgressFormat, pct)
	}
	out.Speed = fmt.Sprintf(SpeedFormat, p.Speed/MB)
	out.Size = fmt.Sprintf(SizeFormat, float64(p.TotalBytes)/MB)

	if secs := int(p.ETA.Seconds()); secs > 0 {
		out.ETA = fmt.Sprintf(ETAFormat, secs)
	} else {
		out.ETA = ETACalculating
	}
	return out
}

// ProgressView shows the latest report from any job of the current batch
type ProgressView struct {
	bar      *widget.ProgressBar
	progress *widget.Label
	speed    *widget.Label
	size     *widget.Label
	eta      *widget.Label
	box      *fyne.Container
}

// NewProgressView creates the progress area in its idle state
func NewProgressView() *ProgressView {
	v := &ProgressView{
		bar:      widget.NewProgressBar(),
		progress: widget.NewLabel(""),
		speed:    widget.NewLabel(""),
		size:     widget.NewLabel(""),
		eta:      widget.NewLabel(""),
	}
	for _, l := range []*widget.Label{v.progress, v.speed, v.size, v.eta} {
		l.Alignment = fyne.TextAlignCenter
	}
	v.box = container.NewVBox(v.bar, v.progress, v.speed, v.size, v.eta)
	v.Reset()
	return v
}

// Container returns the widget tree
func (v *ProgressView) Container() fyne.CanvasObject {
	return v.box
}

// Reset returns to the idle texts
func (v *ProgressView) Reset() {
	v.bar.SetValue(0)
	v.progress.SetText(fmt.Sprintf(ProgressFormat, 0.0))
	v.speed.SetText(fmt.Sprintf(SpeedFormat, 0.0))
	v.size.SetText(fmt.Sprintf(SizeFormat, 0.0))
	v.eta.SetText(ETACalculating)
}

// Apply shows p. Must run on the UI goroutine.
func (v *ProgressView) Apply(p model.Progress) {
	t := FormatProgress(p)
	if t.Value >= 0 {
		v.bar.SetValue(t.Value)
	}
	v.progress.SetText(t.Progress)
	v.speed.SetText(t.Speed)
	if t.Size != "" {
		v.size.SetText(t.Size)
	}
	v.eta.SetText(t.ETA)
}
