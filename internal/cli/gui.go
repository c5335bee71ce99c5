package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/ui"
)

const (
	AppID    = "com.ytget.yt-clipper"
	AppTitle = "YT Clipper"

	WindowWidth  = 720
	WindowHeight = 640
)

// runGUI opens the main window and blocks until it is closed
func runGUI(opts *config.Options, version string) error {
	log.Infof("%s v%s starting...", AppTitle, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LogoResource())

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppTitle, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Startup options override the saved settings
	settings := config.NewSettings(myApp)
	opts.ApplyTo(settings)

	downloadsDir, err := platform.EnsureDownloadDir(settings.GetDownloadDirectory())
	if err != nil {
		log.WithError(err).Warn("Failed to ensure downloads dir")
		downloadsDir = settings.GetDownloadDirectory()
	}

	downloadSvc := download.NewService(settings.GetYtDlpPath(), downloadsDir)
	previewer := platform.NewPreviewer(settings.GetYtDlpPath())
	previewer.SetTimeout(settings.GetPreviewTimeout())

	ui.NewRootUI(myWindow, myApp, downloadSvc, previewer)

	myWindow.ShowAndRun()
	return nil
}
