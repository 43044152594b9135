package components

import (
	"image"

	"lingrow/internal/imaging"
	apptheme "lingrow/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ImageCard is a card-coloured box holding one image and an action button.
type ImageCard struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder *widget.Label
	button      *widget.Button
	hasImage    bool

	actionHandler func()
}

// NewImageCard builds a card of the given size. placeholder is shown until an
// image is set.
func NewImageCard(width, height float32, placeholder, action string) *ImageCard {
	ic := &ImageCard{}
	ic.image = canvas.NewImageFromImage(nil)
	ic.image.FillMode = canvas.ImageFillContain
	ic.image.ScaleMode = canvas.ImageScaleSmooth
	ic.image.SetMinSize(fyne.NewSize(width, height))
	ic.image.Hide()

	ic.placeholder = widget.NewLabel(placeholder)
	ic.button = widget.NewButton(action, func() { call(ic.actionHandler) })

	bg := canvas.NewRectangle(apptheme.Card)
	bg.StrokeColor = apptheme.Accent
	bg.StrokeWidth = 1
	bg.CornerRadius = 6

	body := container.NewStack(
		container.NewCenter(ic.placeholder),
		ic.image,
	)
	ic.container = container.NewStack(bg, container.NewPadded(
		container.NewBorder(nil, container.NewCenter(ic.button), nil, nil, body),
	))
	return ic
}

// NewMockupCard is the home screen card sized for mockup thumbnails.
func NewMockupCard() *ImageCard {
	return NewImageCard(imaging.CardWidth, imaging.CardHeight, "No image loaded", "Load Image")
}

func (ic *ImageCard) SetImage(img image.Image) {
	ic.hasImage = img != nil
	ic.image.Image = img
	if ic.hasImage {
		ic.placeholder.Hide()
		ic.image.Show()
	} else {
		ic.image.Hide()
		ic.placeholder.Show()
	}
	ic.image.Refresh()
}

func (ic *ImageCard) HasImage() bool {
	return ic.hasImage
}

func (ic *ImageCard) SetActionHandler(handler func()) {
	ic.actionHandler = handler
}

// Button exposes the action button, mainly for tests.
func (ic *ImageCard) Button() *widget.Button {
	return ic.button
}

func (ic *ImageCard) GetContainer() *fyne.Container {
	return ic.container
}
