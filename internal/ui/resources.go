package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "video-converter.png"
)

//go:embed video-converter.png
var appIconContent []byte

// LogoResource is the embedded application icon
var LogoResource = &fyne.StaticResource{
	StaticName:    AppIcon,
	StaticContent: appIconContent,
}
