package ui

import (
	"context"
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/kataras/golog"

	"github.com/ytget/yt-batch-downloader/internal/batch"
	"github.com/ytget/yt-batch-downloader/internal/config"
	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/events"
	"github.com/ytget/yt-batch-downloader/internal/logging"
	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
	"github.com/ytget/yt-batch-downloader/internal/search"
)

// Deps are the services the main window drives
type Deps struct {
	Settings   *config.Settings
	Dispatcher *batch.Dispatcher
	Search     *search.Service
	Poster     events.Poster

	// EngineFactory rebuilds the download engine after the settings change.
	// Optional.
	EngineFactory func() (download.Engine, error)

	Logger  *golog.Logger
	Context context.Context
}

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	deps         Deps
	settings     *config.Settings
	localization *Localization
	logger       *golog.Logger
	ctx          context.Context

	title         *canvas.Text
	urlsLabel     *widget.Label
	urlEntry      *widget.Entry
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	locationLabel *widget.Label
	dirEntry      *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	progress      *ProgressView
	searchCheck   *widget.Check
	searchPanel   *SearchPanel

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label

	// Batch whose progress is on screen
	currentBatch string
	batchDirs    map[string]string
	lastSummary  *SummaryWindow

	ffmpegAvailable func() bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(deps.Settings.GetLanguage())

	logger := deps.Logger
	if logger == nil {
		logger = logging.For("ui")
	}
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ui := &RootUI{
		app:             app,
		window:          window,
		deps:            deps,
		settings:        deps.Settings,
		localization:    localization,
		logger:          logger,
		ctx:             ctx,
		batchDirs:       make(map[string]string),
		ffmpegAvailable: platform.FFmpegAvailable,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.title = canvas.NewText(ui.localization.GetText(KeyAppTitle), ColorAccent)
	ui.title.TextStyle = fyne.TextStyle{Bold: true}
	ui.title.TextSize = 22
	ui.title.Alignment = fyne.TextAlignCenter

	ui.urlsLabel = widget.NewLabel(ui.localization.GetText(KeyURLsLabel))
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLsPlaceholder))
	ui.urlEntry.SetMinRowsVisible(URLInputRows)
	ui.urlEntry.Wrapping = fyne.TextWrapOff

	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQualityLabel))
	ui.qualitySelect = widget.NewSelect(model.QualityLabels(), nil)
	preset := ui.settings.GetQualityPreset()
	if !preset.IsValid() {
		preset = model.QualityBest
	}
	ui.qualitySelect.SetSelected(preset.String())

	ui.locationLabel = widget.NewLabel(ui.localization.GetText(KeyLocationLabel))
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowse)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.progress = NewProgressView()

	ui.searchPanel = NewSearchPanel(ui.localization, ui.onSearch, ui.insertURL)
	ui.searchCheck = widget.NewCheck(ui.localization.GetText(KeyEnableSearch), ui.onSearchToggled)
	ui.searchCheck.SetChecked(ui.settings.GetSearchEnabled())

	form := container.New(layout.NewFormLayout(),
		ui.urlsLabel, ui.urlEntry,
		ui.qualityLabel, ui.qualitySelect,
		ui.locationLabel, container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry),
	)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.title),
		form,
		container.NewCenter(ui.downloadBtn),
		ui.notificationContainer,
		ui.progress.Container(),
		widget.NewSeparator(),
		ui.searchCheck,
		ui.searchPanel.Container(),
	)

	ui.window.SetContent(container.NewVScroll(container.NewPadded(content)))
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.title.Text = ui.localization.GetText(KeyAppTitle)
	ui.title.Refresh()

	ui.urlsLabel.SetText(ui.localization.GetText(KeyURLsLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLsPlaceholder))
	ui.qualityLabel.SetText(ui.localization.GetText(KeyQualityLabel))
	ui.locationLabel.SetText(ui.localization.GetText(KeyLocationLabel))
	ui.browseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyBrowse))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.searchCheck.Text = ui.localization.GetText(KeyEnableSearch)
	ui.searchCheck.Refresh()
	ui.searchPanel.refreshTexts()
}

// onBrowse opens a folder picker for the download location
func (ui *RootUI) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

// onDownloadClick validates the form and hands the batch to the dispatcher.
// Validation problems never start a batch.
func (ui *RootUI) onDownloadClick() {
	urls, err := batch.Collect(ui.urlEntry.Text)
	if err != nil {
		ui.showValidation(err)
		return
	}

	quality, _ := model.ParseQualityLabel(ui.qualitySelect.Selected)
	req := batch.Request{
		URLs:      urls,
		Quality:   quality,
		OutputDir: ui.dirEntry.Text,
	}

	b, err := ui.deps.Dispatcher.Dispatch(ui.ctx, req)
	if err != nil {
		ui.showValidation(err)
		return
	}

	jobs := b.Jobs()
	ui.currentBatch = b.ID
	ui.batchDirs[b.ID] = jobs[0].OutputDir
	ui.progress.Reset()
	ui.showNotification(ui.localization.Format(KeyBatchStarted, len(jobs)))

	ui.settings.SetQualityPreset(quality)
	ui.settings.SetDownloadDirectory(strings.TrimSpace(req.OutputDir))

	if quality == model.QualityAudioOnly && !ui.ffmpegAvailable() {
		ui.logger.Warn("ffmpeg not found, audio transcoding will fail")
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyFFmpegMissing), ui.window)
	}
}

// validationMessage maps dispatcher and collector errors to display text
func (ui *RootUI) validationMessage(err error) string {
	switch {
	case errors.Is(err, batch.ErrNoURLs):
		return ui.localization.GetText(KeyNoURLs)
	case errors.Is(err, batch.ErrNoQuality):
		return ui.localization.GetText(KeyNoQuality)
	case errors.Is(err, batch.ErrNoOutputDir):
		return ui.localization.GetText(KeyNoLocation)
	case errors.Is(err, batch.ErrOutputDir):
		return ui.localization.GetText(KeyLocationFailed) + ": " + err.Error()
	default:
		return err.Error()
	}
}

func (ui *RootUI) showValidation(err error) {
	msg := ui.validationMessage(err)
	ui.showNotification(msg)
	dialog.ShowError(errors.New(msg), ui.window)
}

func (ui *RootUI) showError(err error) {
	ui.logger.Error(err)
	ui.showNotification(ui.localization.GetText(KeyError) + ": " + err.Error())
	dialog.ShowError(err, ui.window)
}

// showNotification displays a message in the notification panel
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
}

// onSearchToggled shows or hides the search panel and remembers the choice
func (ui *RootUI) onSearchToggled(enabled bool) {
	ui.settings.SetSearchEnabled(enabled)
	ui.searchPanel.SetVisible(enabled)
}

// onSearch starts a background search; results arrive as events
func (ui *RootUI) onSearch(query string) {
	if strings.TrimSpace(query) == "" {
		ui.showNotification(ui.localization.GetText(KeyEmptyQuery))
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyEmptyQuery), ui.window)
		return
	}
	if ui.deps.Search == nil {
		return
	}
	ui.searchPanel.SetBusy(true)
	ui.deps.Search.SearchAsync(ui.ctx, query, ui.deps.Poster)
}

// insertURL appends url to the input unless it is already there
func (ui *RootUI) insertURL(url string) {
	if text, changed := search.InsertURL(ui.urlEntry.Text, url); changed {
		ui.urlEntry.SetText(text)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running services
func (ui *RootUI) onSettingsSaved() {
	ui.deps.Dispatcher.SetMaxParallel(ui.settings.GetMaxParallelDownloads())

	if ui.deps.EngineFactory != nil {
		engine, err := ui.deps.EngineFactory()
		if err != nil {
			ui.showError(err)
			return
		}
		ui.deps.Dispatcher.SetEngine(engine)
		ui.logger.Infof("Download engine set to %s", engine.Name())
	}

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}

// Apply handles one event from the bus. It must run on the UI goroutine.
func (ui *RootUI) Apply(ev events.Event) {
	switch ev.Kind {
	case events.KindProgress:
		// Late reports from an earlier batch must not overwrite the new one
		if ev.BatchID != ui.currentBatch {
			return
		}
		ui.progress.Apply(ev.Progress)

	case events.KindSummary:
		ui.onBatchFinished(ev.BatchID, ev.Summary)

	case events.KindSearchResults:
		ui.searchPanel.SetBusy(false)
		ui.searchPanel.SetResults(ev.Results)

	case events.KindSearchFailed:
		ui.searchPanel.SetBusy(false)
		if errors.Is(ev.Err, search.ErrEmptyQuery) {
			ui.showNotification(ui.localization.GetText(KeyEmptyQuery))
			return
		}
		ui.showError(errors.New(ui.localization.GetText(KeySearchFailed) + ": " + ev.Err.Error()))
	}
}

// onBatchFinished opens the summary window for a completed batch
func (ui *RootUI) onBatchFinished(batchID string, state model.AggregateState) {
	dir := ui.batchDirs[batchID]
	delete(ui.batchDirs, batchID)

	ui.showNotification(ui.localization.Format(KeyBatchFinished, state.Succeeded(), state.Failed()))
	ui.lastSummary = NewSummaryWindow(ui.app, ui.localization, state, dir)
	ui.lastSummary.Show()
}
