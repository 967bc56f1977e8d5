package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens the default theme and darkens the preview backdrop
type CompactTheme struct{}

var _ fyne.Theme = (*CompactTheme)(nil)

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255} // finished conversion
	case theme.ColorNameError:
		return color.NRGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNameWarning:
		return color.NRGBA{R: 239, G: 108, B: 0, A: 255} // preview unavailable, file gone
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0, G: 121, B: 107, A: 255} // progress bar and default buttons
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 16, G: 16, B: 18, A: 255}
		}
		return color.NRGBA{R: 245, G: 245, B: 247, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
