package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	// warnColor marks the last five seconds of a minute.
	warnColor = color.NRGBA{R: 0x7d, G: 0x52, B: 0x60, A: 0xff}
	// urgentColor marks the last three seconds of a minute.
	urgentColor = color.NRGBA{R: 0xb3, G: 0x26, B: 0x1e, A: 0xff}
)

// CustomTheme keeps the default look but pins the warning and error colours
// used by the stopwatch thresholds.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the colour for the given name and variant.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameWarning:
		return warnColor
	case theme.ColorNameError:
		return urgentColor
	}
	return t.Theme.Color(name, variant)
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
