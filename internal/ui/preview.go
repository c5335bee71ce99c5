package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-clipper/internal/model"
)

// PreviewPanel shows the metadata of the loaded URL in place of an embedded player
type PreviewPanel struct {
	localization *Localization
	onOpen       func(url string)

	card         *widget.Card
	titleLabel   *widget.Label
	detailsLabel *widget.Label
	entriesLabel *widget.Label
	openBtn      *widget.Button

	url string
}

// NewPreviewPanel creates an empty preview panel. onOpen receives the page URL
// when "Open in browser" is pressed.
func NewPreviewPanel(localization *Localization, onOpen func(url string)) *PreviewPanel {
	p := &PreviewPanel{
		localization: localization,
		onOpen:       onOpen,
	}

	p.titleLabel = widget.NewLabel("")
	p.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.titleLabel.Wrapping = fyne.TextWrapWord

	p.detailsLabel = widget.NewLabel("")
	p.entriesLabel = widget.NewLabel("")
	p.entriesLabel.Wrapping = fyne.TextWrapWord

	p.openBtn = widget.NewButton(IconGlobe+" "+localization.GetText(KeyOpenInBrowser), func() {
		if p.url != "" && p.onOpen != nil {
			p.onOpen(p.url)
		}
	})
	p.openBtn.Importance = widget.LowImportance

	body := container.NewVBox(p.titleLabel, p.detailsLabel, p.entriesLabel, container.NewHBox(p.openBtn))
	p.card = widget.NewCard(localization.GetText(KeyPreview), "", body)

	p.ShowEmpty()
	return p
}

// Container returns the panel's canvas object
func (p *PreviewPanel) Container() fyne.CanvasObject {
	return p.card
}

// URL returns the page URL the panel currently describes
func (p *PreviewPanel) URL() string {
	return p.url
}

// ShowEmpty resets the panel to its initial hint
func (p *PreviewPanel) ShowEmpty() {
	p.url = ""
	p.titleLabel.SetText(p.localization.GetText(KeyPreviewEmpty))
	p.detailsLabel.SetText("")
	p.entriesLabel.SetText("")
	p.entriesLabel.Hide()
	p.openBtn.Disable()
}

// ShowLoading marks url as being probed
func (p *PreviewPanel) ShowLoading(url string) {
	p.url = url
	p.titleLabel.SetText(p.localization.GetText(KeyPreviewLoading))
	p.detailsLabel.SetText(url)
	p.entriesLabel.SetText("")
	p.entriesLabel.Hide()
	p.openBtn.Enable()
}

// ShowError reports a failed probe; the URL can still be opened in a browser
func (p *PreviewPanel) ShowError(err error) {
	p.titleLabel.SetText(p.localization.GetText(KeyPreviewFailed))
	p.detailsLabel.SetText(err.Error())
	p.entriesLabel.SetText("")
	p.entriesLabel.Hide()
}

// ShowInfo renders video or playlist metadata
func (p *PreviewPanel) ShowInfo(info *model.VideoInfo) {
	if info.WebpageURL != "" {
		p.url = info.WebpageURL
	}
	p.openBtn.Enable()

	p.titleLabel.SetText(truncate(info.Title, MaxTitleRunes))
	p.detailsLabel.SetText(p.details(info))

	if !info.IsPlaylist() {
		p.entriesLabel.SetText("")
		p.entriesLabel.Hide()
		return
	}
	p.entriesLabel.SetText(p.entryLines(info.Entries))
	p.entriesLabel.Show()
}

// details renders the uploader, duration and entry count line
func (p *PreviewPanel) details(info *model.VideoInfo) string {
	var parts []string
	if info.Uploader != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", p.localization.GetText(KeyUploader), info.Uploader))
	}

	duration := info.DurationString()
	if info.IsPlaylist() {
		parts = append(parts, fmt.Sprintf("%s: %d", p.localization.GetText(KeyVideos), len(info.Entries)))
		duration = (&model.VideoInfo{Duration: info.TotalDuration()}).DurationString()
	}
	parts = append(parts, fmt.Sprintf("%s: %s", p.localization.GetText(KeyDuration), duration))

	return strings.Join(parts, MiddleDotSeparator)
}

// entryLines lists the first MaxPreviewEntries playlist entries
func (p *PreviewPanel) entryLines(entries []*model.PlaylistEntry) string {
	lines := make([]string, 0, MaxPreviewEntries+1)
	for i, e := range entries {
		if i == MaxPreviewEntries {
			lines = append(lines, fmt.Sprintf(p.localization.GetText(KeyMoreEntries), len(entries)-MaxPreviewEntries))
			break
		}
		lines = append(lines, fmt.Sprintf(EntryLineFormat, i+1, truncate(e.Title, MaxTitleRunes), e.DurationString()))
	}
	return strings.Join(lines, "\n")
}

// refreshTexts re-applies localized static texts
func (p *PreviewPanel) refreshTexts() {
	p.card.SetTitle(p.localization.GetText(KeyPreview))
	p.openBtn.SetText(IconGlobe + " " + p.localization.GetText(KeyOpenInBrowser))
	if p.url == "" {
		p.titleLabel.SetText(p.localization.GetText(KeyPreviewEmpty))
	}
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
