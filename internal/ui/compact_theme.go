package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is the dashboard theme: the chart palette's accent colors and
// tighter spacing so more cards fit on screen
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

var (
	accentBlue  = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	accentGreen = color.RGBA{R: 16, G: 185, B: 129, A: 255}
	accentRed   = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	accentAmber = color.RGBA{R: 245, G: 158, B: 11, A: 255}
	slate800    = color.RGBA{R: 31, G: 41, B: 55, A: 255}
	slate900    = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	gray50      = color.RGBA{R: 249, G: 250, B: 251, A: 255}
	gray100     = color.RGBA{R: 243, G: 244, B: 246, A: 255}
)

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return accentGreen
	case theme.ColorNameError:
		return accentRed
	case theme.ColorNameWarning:
		return accentAmber
	case theme.ColorNamePrimary:
		return accentBlue
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return slate900
		}
		return gray50
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground:
		if variant == theme.VariantDark {
			return slate800
		}
		return gray100
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return gray100
		}
		return slate800
	}

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
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
