package components

import (
	"lingrow/internal/assets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// NavBar is the bottom navigation: home, explore, the write pill and profile.
type NavBar struct {
	container *fyne.Container
	Home      *widget.Button
	Explore   *widget.Button
	Write     *PillButton
	Profile   *widget.Button

	homeHandler    func()
	exploreHandler func()
	writeHandler   func()
	profileHandler func()
}

func NewNavBar(icons *assets.IconSet) *NavBar {
	nb := &NavBar{}
	nb.Home = navButton(icons, "home", func() { call(nb.homeHandler) })
	nb.Explore = navButton(icons, "explore", func() { call(nb.exploreHandler) })
	writeIcon, _ := icons.Get("write")
	nb.Write = NewPillButton(writeIcon, assets.Glyph("write"), func() { call(nb.writeHandler) })
	nb.Profile = navButton(icons, "profile", func() { call(nb.profileHandler) })

	nb.container = container.NewHBox(
		layout.NewSpacer(), nb.Home,
		layout.NewSpacer(), nb.Explore,
		layout.NewSpacer(), nb.Write,
		layout.NewSpacer(), nb.Profile,
		layout.NewSpacer(),
	)
	return nb
}

// navButton uses the icon when it loaded and the glyph otherwise.
func navButton(icons *assets.IconSet, name string, tapped func()) *widget.Button {
	var b *widget.Button
	if icon, ok := icons.Get(name); ok {
		b = widget.NewButtonWithIcon("", icon, tapped)
	} else {
		b = widget.NewButton(assets.Glyph(name), tapped)
	}
	b.Importance = widget.LowImportance
	return b
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (nb *NavBar) SetHomeHandler(handler func())    { nb.homeHandler = handler }
func (nb *NavBar) SetExploreHandler(handler func()) { nb.exploreHandler = handler }
func (nb *NavBar) SetWriteHandler(handler func())   { nb.writeHandler = handler }
func (nb *NavBar) SetProfileHandler(handler func()) { nb.profileHandler = handler }

func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}
