package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyYtDlpPath          = "ytdlp_path"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyDefaultFormats     = "default_formats"
	KeyPreviewTimeout     = "preview_timeout_seconds"
)

// Default values
const (
	DefaultYtDlpPath          = "yt-dlp"
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	DefaultPreviewTimeout     = 60
	MinPreviewTimeout         = 5
	MaxPreviewTimeout         = 300
	FallbackDownloadDir       = "/tmp/downloads"

	formatListSeparator = ","
)

// DefaultFormats is the format selection used when none was saved
var DefaultFormats = []model.Format{model.FormatMP4}

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
	s.app.Preferences().SetString(KeyDownloadDir, strings.TrimSpace(dir))
}

// GetYtDlpPath returns the downloader executable name or path
func (s *Settings) GetYtDlpPath() string {
	return s.app.Preferences().StringWithFallback(KeyYtDlpPath, DefaultYtDlpPath)
}

// SetYtDlpPath sets the downloader executable, empty restores the default
func (s *Settings) SetYtDlpPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultYtDlpPath
	}
	s.app.Preferences().SetString(KeyYtDlpPath, path)
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

// GetAutoRevealOnComplete returns whether to open the download folder after success
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the download folder after success
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetDefaultFormats returns the formats pre-selected in the form, in
// preference order. Unknown saved values fall back to DefaultFormats.
func (s *Settings) GetDefaultFormats() []model.Format {
	saved := s.app.Preferences().String(KeyDefaultFormats)
	if saved == "" {
		return append([]model.Format(nil), DefaultFormats...)
	}

	formats, err := model.ParseFormats(strings.Split(saved, formatListSeparator))
	if err != nil || len(formats) == 0 {
		return append([]model.Format(nil), DefaultFormats...)
	}
	return formats
}

// SetDefaultFormats saves the formats pre-selected in the form
func (s *Settings) SetDefaultFormats(formats []model.Format) {
	formats = model.FormatSelection(formats)
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	s.app.Preferences().SetString(KeyDefaultFormats, strings.Join(names, formatListSeparator))
}

// GetPreviewTimeout returns the timeout for loading a preview
func (s *Settings) GetPreviewTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyPreviewTimeout)
	if value <= 0 {
		s.SetPreviewTimeout(DefaultPreviewTimeout * time.Second)
		return DefaultPreviewTimeout * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetPreviewTimeout sets the preview timeout, clamped to whole seconds
// between MinPreviewTimeout and MaxPreviewTimeout
func (s *Settings) SetPreviewTimeout(timeout time.Duration) {
	seconds := int(timeout / time.Second)
	if seconds < MinPreviewTimeout {
		seconds = MinPreviewTimeout
	}
	if seconds > MaxPreviewTimeout {
		seconds = MaxPreviewTimeout
	}
	s.app.Preferences().SetInt(KeyPreviewTimeout, seconds)
}
