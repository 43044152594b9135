package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Lingrow is the light pastel theme used by every window.
type Lingrow struct{}

var _ fyne.Theme = Lingrow{}

func New() fyne.Theme {
	return Lingrow{}
}

func (Lingrow) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return Background
	case fynetheme.ColorNameButton, fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return Card
	case fynetheme.ColorNameInputBackground:
		return White
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus, fynetheme.ColorNameHyperlink:
		return Accent
	case fynetheme.ColorNameHover:
		return Adjust(Card, -0.04)
	}
	return fynetheme.DefaultTheme().Color(name, fynetheme.VariantLight)
}

func (Lingrow) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (Lingrow) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (Lingrow) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}
