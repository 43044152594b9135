package views

import (
	"image"

	"lingrow/internal/assets"
	"lingrow/internal/imaging"
	"lingrow/internal/models"
	apptheme "lingrow/internal/theme"
	"lingrow/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	AppTitle = "Lingrow"
	Subtitle = "Your voice, in any language."
)

// MainView is the phone-shaped main window: home and profile screens over a
// shared bottom navigation bar.
type MainView struct {
	window fyne.Window

	home    *fyne.Container
	profile *fyne.Container
	screens *fyne.Container

	logo       *canvas.Image
	mockupCard *components.ImageCard
	avatarCard *components.ImageCard
	email      *widget.Entry
	password   *widget.Entry
	navBar     *components.NavBar
	statusBar  *components.StatusBar

	writeButton   *widget.Button
	exploreButton *widget.Button
	recentButton  *widget.Button
	backButton    *widget.Button
	signUpButton  *widget.Button
	friendsButton *widget.Button

	loadImageHandler  func()
	writeHandler      func()
	exploreHandler    func()
	recentHandler     func()
	signUpHandler     func(email, password string)
	addFriendsHandler func()

	recent *RecentDialog
}

func NewMainView(window fyne.Window, icons *assets.IconSet, logo fyne.Resource) *MainView {
	mv := &MainView{window: window}
	mv.initializeComponents(icons, logo)
	mv.buildLayout()
	mv.setupEventHandlers()
	return mv
}

func (mv *MainView) initializeComponents(icons *assets.IconSet, logo fyne.Resource) {
	mv.logo = canvas.NewImageFromResource(logo)
	mv.logo.FillMode = canvas.ImageFillContain
	mv.logo.SetMinSize(fyne.NewSize(imaging.LogoSize, imaging.LogoSize))
	if logo == nil {
		mv.logo.Hide()
	}

	mv.mockupCard = components.NewMockupCard()
	mv.avatarCard = components.NewImageCard(imaging.LogoSize*2, imaging.LogoSize*2, "Image", "+ Add image")
	mv.email = widget.NewEntry()
	mv.email.SetPlaceHolder("you@example.com")
	mv.password = widget.NewPasswordEntry()
	mv.navBar = components.NewNavBar(icons)
	mv.statusBar = components.NewStatusBar()

	mv.writeButton = widget.NewButton("✎ Write something", func() { call(mv.writeHandler) })
	mv.exploreButton = widget.NewButton("🌍 Explore cultural expressions", func() { call(mv.exploreHandler) })
	mv.recentButton = widget.NewButton("💡 Recent improvements", func() { call(mv.recentHandler) })
	mv.backButton = widget.NewButton("←", mv.ShowHome)
	mv.backButton.Importance = widget.LowImportance
	mv.signUpButton = widget.NewButton("Sign Up", func() {
		if mv.signUpHandler != nil {
			mv.signUpHandler(mv.email.Text, mv.password.Text)
		}
	})
	mv.friendsButton = widget.NewButton("Add friends", func() { call(mv.addFriendsHandler) })
}

func (mv *MainView) buildLayout() {
	title := canvas.NewText(AppTitle, apptheme.Accent)
	title.TextSize = 24
	title.TextStyle = fyne.TextStyle{Bold: true}
	subtitle := canvas.NewText(Subtitle, apptheme.Accent)
	subtitle.TextSize = 13

	header := container.NewVBox(
		container.NewHBox(mv.logo, container.NewCenter(title)),
		subtitle,
	)
	mv.home = container.NewVBox(
		header,
		mv.mockupCard.GetContainer(),
		mv.writeButton,
		mv.exploreButton,
		mv.recentButton,
	)

	heading := canvas.NewText("Create an account", apptheme.Accent)
	heading.TextSize = 20
	heading.TextStyle = fyne.TextStyle{Bold: true}
	mv.profile = container.NewVBox(
		container.NewHBox(mv.backButton, container.NewCenter(heading)),
		mv.avatarCard.GetContainer(),
		widget.NewLabel("Email"),
		mv.email,
		widget.NewLabel("Password"),
		mv.password,
		container.NewCenter(mv.signUpButton),
		mv.friendsButton,
	)
	mv.profile.Hide()

	mv.screens = container.NewStack(
		container.NewPadded(mv.home),
		container.NewPadded(mv.profile),
	)
	bottom := container.NewVBox(mv.statusBar.GetContainer(), mv.navBar.GetContainer())
	content := container.NewStack(
		canvas.NewRectangle(apptheme.Background),
		container.NewBorder(nil, bottom, nil, nil, container.NewVScroll(mv.screens)),
	)
	mv.window.SetContent(content)
}

func (mv *MainView) setupEventHandlers() {
	mv.mockupCard.SetActionHandler(func() { call(mv.loadImageHandler) })
	mv.avatarCard.SetActionHandler(func() { call(mv.loadImageHandler) })
	mv.navBar.SetHomeHandler(mv.ShowHome)
	mv.navBar.SetProfileHandler(mv.ShowProfile)
	mv.navBar.SetExploreHandler(func() { call(mv.exploreHandler) })
	mv.navBar.SetWriteHandler(func() { call(mv.writeHandler) })
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// Event handler setters - called by controller

func (mv *MainView) SetLoadImageHandler(handler func())  { mv.loadImageHandler = handler }
func (mv *MainView) SetWriteHandler(handler func())      { mv.writeHandler = handler }
func (mv *MainView) SetExploreHandler(handler func())    { mv.exploreHandler = handler }
func (mv *MainView) SetRecentHandler(handler func())     { mv.recentHandler = handler }
func (mv *MainView) SetAddFriendsHandler(handler func()) { mv.addFriendsHandler = handler }

func (mv *MainView) SetSignUpHandler(handler func(email, password string)) {
	mv.signUpHandler = handler
}

// UI update methods - called by controller on the Fyne thread

// SetMockup shows the mockup thumbnails in the header logo and the image card.
func (mv *MainView) SetMockup(m *models.Mockup) {
	if m == nil {
		mv.mockupCard.SetImage(nil)
		return
	}
	mv.setLogoImage(m.Logo)
	mv.mockupCard.SetImage(m.Card)
	mv.statusBar.SetImageInfo(displayName(m.Path), m.Width(), m.Height())
}

func (mv *MainView) setLogoImage(img image.Image) {
	mv.logo.Resource = nil
	mv.logo.Image = img
	mv.logo.Show()
	mv.logo.Refresh()
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) ShowHome() {
	mv.profile.Hide()
	mv.home.Show()
	mv.screens.Refresh()
}

func (mv *MainView) ShowProfile() {
	mv.home.Hide()
	mv.profile.Show()
	mv.screens.Refresh()
}

// ProfileVisible reports which screen is up.
func (mv *MainView) ProfileVisible() bool {
	return mv.profile.Visible()
}

func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowImageDialog opens the native picker, limited to PNG files unless anyFile.
func (mv *MainView) ShowImageDialog(anyFile bool, callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, mv.window)
	if !anyFile {
		d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".PNG"}))
	}
	d.Show()
}

// ShowRecent opens the recent list, or refreshes it if it is already open.
func (mv *MainView) ShowRecent(rows []RecentRow) {
	if mv.recent != nil && mv.recent.Visible() {
		mv.recent.SetRows(rows)
		return
	}
	mv.recent = NewRecentDialog(mv.window, rows)
	mv.recent.Show()
}

// RefreshRecent updates an open recent list. It does nothing when closed.
func (mv *MainView) RefreshRecent(rows []RecentRow) {
	if mv.recent != nil && mv.recent.Visible() {
		mv.recent.SetRows(rows)
	}
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) GetNavBar() *components.NavBar {
	return mv.navBar
}

func (mv *MainView) GetMockupCard() *components.ImageCard {
	return mv.mockupCard
}
