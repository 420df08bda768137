package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/search"
)

// SearchPanel is the query box plus result list. Row i always maps to
// results[i].URL.
type SearchPanel struct {
	loc *Localization

	label  *widget.Label
	entry  *widget.Entry
	button *widget.Button
	list   *widget.List
	box    *fyne.Container

	results []model.SearchResult
	rows    []string

	onSearch func(query string)
	onPick   func(url string)
}

// NewSearchPanel creates a hidden-by-default search panel. onSearch receives
// the raw query; onPick receives the URL of an activated row.
func NewSearchPanel(loc *Localization, onSearch func(string), onPick func(string)) *SearchPanel {
	p := &SearchPanel{loc: loc, onSearch: onSearch, onPick: onPick}

	p.label = widget.NewLabel(loc.GetText(KeySearchLabel))
	p.entry = widget.NewEntry()
	p.entry.OnSubmitted = func(string) { p.submit() }
	p.button = widget.NewButton(IconSearch+" "+loc.GetText(KeySearch), p.submit)

	p.list = widget.NewList(
		func() int { return len(p.rows) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(p.rows) {
				obj.(*widget.Label).SetText(p.rows[id])
			}
		},
	)
	// Unselect right away so the same row can be activated again
	p.list.OnSelected = func(id widget.ListItemID) {
		p.list.Unselect(id)
		p.Pick(id)
	}

	listArea := container.NewGridWrap(fyne.NewSize(680, float32(SearchResultsRows)*28), p.list)
	p.box = container.NewVBox(
		container.NewBorder(nil, nil, p.label, p.button, p.entry),
		listArea,
	)
	p.box.Hide()
	return p
}

// Container returns the widget tree
func (p *SearchPanel) Container() fyne.CanvasObject {
	return p.box
}

// SetVisible shows or hides the panel
func (p *SearchPanel) SetVisible(visible bool) {
	if visible {
		p.box.Show()
	} else {
		p.box.Hide()
	}
}

// SetBusy disables the search button while a request is running
func (p *SearchPanel) SetBusy(busy bool) {
	if busy {
		p.button.Disable()
	} else {
		p.button.Enable()
	}
}

// SetResults replaces the list contents
func (p *SearchPanel) SetResults(results []model.SearchResult) {
	p.results = results
	p.rows = search.Rows(results)
	p.list.Refresh()
}

// Rows returns the rendered rows
func (p *SearchPanel) Rows() []string {
	return p.rows
}

// Pick activates row id
func (p *SearchPanel) Pick(id int) {
	if id < 0 || id >= len(p.results) || p.onPick == nil {
		return
	}
	p.onPick(p.results[id].URL)
}

// Query returns the current query text
func (p *SearchPanel) Query() string {
	return p.entry.Text
}

// SetQuery replaces the query text
func (p *SearchPanel) SetQuery(q string) {
	p.entry.SetText(q)
}

func (p *SearchPanel) submit() {
	if p.onSearch != nil {
		p.onSearch(p.entry.Text)
	}
}

// refreshTexts re-reads labels after a language change
func (p *SearchPanel) refreshTexts() {
	p.label.SetText(p.loc.GetText(KeySearchLabel))
	p.button.SetText(IconSearch + " " + p.loc.GetText(KeySearch))
}
