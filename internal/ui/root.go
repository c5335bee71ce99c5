package ui

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/yt-clipper/internal/command"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Previewer loads the metadata shown before a download
type Previewer interface {
	Preview(ctx context.Context, url string) (*model.VideoInfo, error)
	SetBinary(binary string)
	SetTimeout(timeout time.Duration)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	downloadSvc  download.Downloader
	previewer    Previewer
	settings     *config.Settings
	localization *Localization

	// URL row
	logo     *canvas.Image
	urlLabel *widget.Label
	urlEntry *widget.Entry
	loadBtn  *widget.Button

	preview *PreviewPanel

	// Download options
	optionsCard    *widget.Card
	modeRadio      *widget.RadioGroup
	startLabel     *widget.Label
	endLabel       *widget.Label
	startEntry     *widget.Entry
	endEntry       *widget.Entry
	formatsCard    *widget.Card
	formatGroup    *widget.CheckGroup
	downloadBtn    *widget.Button
	statusLabel    *widget.Label
	busyIndicator  *widget.ProgressBarInfinite
	partialMode    bool
	previewRequest int

	watchers sync.WaitGroup
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, previewer Previewer) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		downloadSvc:  downloadSvc,
		previewer:    previewer,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	log.WithField("binary", downloadSvc.Binary()).Debug("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	// URL row
	ui.urlLabel = widget.NewLabel(l.GetText(KeyURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onLoadClick()
	}
	ui.loadBtn = widget.NewButton(l.GetText(KeyLoad), ui.onLoadClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.logo = canvas.NewImageFromResource(LogoResource())
	ui.logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	ui.logo.FillMode = canvas.ImageFillContain
	left := container.NewHBox(ui.logo, settingsBtn, ui.urlLabel)
	urlRow := container.NewBorder(nil, nil, left, ui.loadBtn, ui.urlEntry)

	// Preview
	ui.preview = NewPreviewPanel(l, ui.openInBrowser)

	// Full or partial
	ui.modeRadio = widget.NewRadioGroup(ui.modeOptions(), ui.onModeChanged)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true

	ui.startLabel = widget.NewLabel(l.GetText(KeyStartTime))
	ui.startEntry = widget.NewEntry()
	ui.startEntry.SetText(DefaultTimeText)
	ui.endLabel = widget.NewLabel(l.GetText(KeyEndTime))
	ui.endEntry = widget.NewEntry()
	ui.endEntry.SetText(DefaultTimeText)

	timeRow := container.NewHBox(
		ui.startLabel, sizedEntry(ui.startEntry),
		ui.endLabel, sizedEntry(ui.endEntry),
	)
	ui.optionsCard = widget.NewCard("", l.GetText(KeyDownloadOptions), container.NewVBox(ui.modeRadio, timeRow))
	ui.modeRadio.SetSelected(l.GetText(KeyFullVideo))

	// Formats, in preference order of selection
	var formatLabels []string
	for _, f := range model.AllFormats {
		formatLabels = append(formatLabels, f.Label())
	}
	ui.formatGroup = widget.NewCheckGroup(formatLabels, nil)
	ui.formatGroup.Horizontal = true
	var defaults []string
	for _, f := range ui.settings.GetDefaultFormats() {
		defaults = append(defaults, f.Label())
	}
	ui.formatGroup.SetSelected(defaults)
	ui.formatsCard = widget.NewCard("", l.GetText(KeyFormatOptions), ui.formatGroup)

	// Download and status
	ui.downloadBtn = widget.NewButton(l.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.busyIndicator = widget.NewProgressBarInfinite()
	ui.busyIndicator.Stop()
	ui.busyIndicator.Hide()

	bottom := container.NewVBox(
		ui.optionsCard,
		ui.formatsCard,
		ui.downloadBtn,
		ui.busyIndicator,
		ui.statusLabel,
	)

	content := container.NewBorder(
		urlRow, // top
		bottom, // bottom
		nil,    // left
		nil,    // right
		container.NewVScroll(ui.preview.Container()), // center
	)

	ui.window.SetContent(content)
}

// sizedEntry keeps a time entry wide enough for HH:MM:SS
func sizedEntry(e *widget.Entry) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(TimeEntryWidth, e.MinSize().Height), e)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// modeOptions returns the localized radio labels, full first
func (ui *RootUI) modeOptions() []string {
	return []string{ui.localization.GetText(KeyFullVideo), ui.localization.GetText(KeyPartialVideo)}
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.urlLabel.SetText(l.GetText(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.loadBtn.SetText(l.GetText(KeyLoad))
	ui.preview.refreshTexts()

	partial := ui.partialMode
	ui.modeRadio.Options = ui.modeOptions()
	if partial {
		ui.modeRadio.SetSelected(l.GetText(KeyPartialVideo))
	} else {
		ui.modeRadio.SetSelected(l.GetText(KeyFullVideo))
	}
	ui.modeRadio.Refresh()

	ui.optionsCard.SetSubTitle(l.GetText(KeyDownloadOptions))
	ui.formatsCard.SetSubTitle(l.GetText(KeyFormatOptions))
	ui.startLabel.SetText(l.GetText(KeyStartTime))
	ui.endLabel.SetText(l.GetText(KeyEndTime))
	ui.downloadBtn.SetText(l.GetText(KeyDownload))
}

// onModeChanged enables the time entries only in partial mode
func (ui *RootUI) onModeChanged(selected string) {
	ui.partialMode = selected == ui.localization.GetText(KeyPartialVideo)
	if ui.partialMode {
		ui.startEntry.Enable()
		ui.endEntry.Enable()
	} else {
		ui.startEntry.Disable()
		ui.endEntry.Disable()
	}
}

// onLoadClick probes the entered URL and shows the result in the preview panel
func (ui *RootUI) onLoadClick() {
	urlText := cleanURL(ui.urlEntry.Text)
	if urlText == "" {
		ui.showError(model.ErrInvalidURL)
		return
	}
	if err := validateURL(urlText); err != nil {
		ui.showError(err)
		return
	}

	ui.previewRequest++
	request := ui.previewRequest
	ui.preview.ShowLoading(urlText)

	log.WithField("url", urlText).Debug("Loading preview")

	go func() {
		info, err := ui.previewer.Preview(context.Background(), urlText)
		fyne.Do(func() {
			// a newer Load superseded this one
			if request != ui.previewRequest {
				return
			}
			if err != nil {
				ui.preview.ShowError(err)
				return
			}
			ui.preview.ShowInfo(info)
		})
	}()
}

// openInBrowser forwards the previewed page to the OS browser
func (ui *RootUI) openInBrowser(rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ui.showError(err)
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		log.WithError(err).WithField("url", rawURL).Warn("Failed to open browser")
		ui.showError(err)
	}
}

// onDownloadClick validates the form and starts the downloader
func (ui *RootUI) onDownloadClick() {
	req, err := formRequest(ui.urlEntry.Text, ui.partialMode, ui.startEntry.Text, ui.endEntry.Text, ui.formatGroup.Selected)
	if err != nil {
		ui.showError(err)
		return
	}

	args, err := command.Build(req)
	if err != nil {
		ui.showError(err)
		return
	}

	dir, err := platform.EnsureDownloadDir(ui.settings.GetDownloadDirectory())
	if err != nil {
		ui.showError(err)
		return
	}
	platform.CheckFreeSpace(dir)
	ui.downloadSvc.SetWorkDir(dir)

	job, err := ui.downloadSvc.Start(args)
	if err != nil {
		log.WithError(err).WithField("url", req.URL).Warn("Download not started")
		ui.showError(err)
		return
	}

	ui.settings.SetDefaultFormats(req.Formats)
	ui.setBusy(true)
	ui.statusLabel.SetText(ui.localization.GetText(KeyStartingDownload))

	ui.watchers.Add(1)
	go ui.watchJob(job)
}

// watchJob drains the job's events and applies them on the UI thread
func (ui *RootUI) watchJob(job *download.Job) {
	defer ui.watchers.Done()
	for ev := range job.Events() {
		fyne.Do(func() {
			ui.applyEvent(ev)
		})
	}
}

// applyEvent mirrors a single job event in the form. Must run on the UI thread.
func (ui *RootUI) applyEvent(ev download.Event) {
	switch ev.Kind {
	case download.EventOutput, download.EventError:
		ui.statusLabel.SetText(ev.Text)
	case download.EventFinished:
		ui.setBusy(false)
		l := ui.localization

		if ev.Succeeded() {
			ui.statusLabel.SetText(l.GetText(KeyDownloadSucceeded))
			dialog.ShowInformation(l.GetText(KeySuccess), l.GetText(KeyDownloadSucceeded), ui.window)
			ui.revealDownloads()
			return
		}

		ui.statusLabel.SetText(l.GetText(KeyDownloadFailed))
		ui.showError(&model.ProcessFailedError{ExitCode: ev.ExitCode})
	}
}

// setBusy toggles the busy indicator and the Download button together
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.downloadBtn.Disable()
		ui.busyIndicator.Show()
		ui.busyIndicator.Start()
		return
	}
	ui.busyIndicator.Stop()
	ui.busyIndicator.Hide()
	ui.downloadBtn.Enable()
}

// revealDownloads opens the download folder when auto-reveal is enabled
func (ui *RootUI) revealDownloads() {
	if !ui.settings.GetAutoRevealOnComplete() {
		return
	}
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.OpenInFileManager(dir); err != nil {
		log.WithError(err).WithField("dir", dir).Warn("Failed to reveal download directory")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningDir)+": "+err.Error()), ui.window)
	}
}

// showError shows err as a blocking dialog with a localized message
func (ui *RootUI) showError(err error) {
	dialog.ShowError(errors.New(errorMessage(ui.localization, err)), ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into the services and the form
func (ui *RootUI) applySettings() {
	binary := ui.settings.GetYtDlpPath()
	ui.downloadSvc.SetBinary(binary)
	ui.previewer.SetBinary(binary)
	ui.previewer.SetTimeout(ui.settings.GetPreviewTimeout())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	log.WithFields(log.Fields{
		"binary": binary,
		"dir":    ui.settings.GetDownloadDirectory(),
	}).Info("Settings applied")
}

// Busy reports whether a download started from this window is running
func (ui *RootUI) Busy() bool {
	return ui.downloadBtn.Disabled()
}
