package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "yt-clipper.svg"
)

//go:embed assets/yt-clipper.svg
var logoSVG []byte

// LogoResource returns the embedded application logo
func LogoResource() fyne.Resource {
	return fyne.NewStaticResource(AppIcon, logoSVG)
}
