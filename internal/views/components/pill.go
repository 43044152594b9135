package components

import (
	"image/color"
	"sync"
	"time"

	apptheme "lingrow/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	// HoverFactor darkens the pill while the pointer is over it.
	HoverFactor = -0.06
	// FlashDuration is how long the pill stays dark after a click.
	FlashDuration = 120 * time.Millisecond

	pillWidth  = 72
	pillHeight = 44
)

var (
	_ desktop.Hoverable = (*PillButton)(nil)
	_ fyne.Tappable     = (*PillButton)(nil)
)

// PillButton is the rounded accent button in the middle of the navigation bar.
type PillButton struct {
	widget.BaseWidget

	background *canvas.Rectangle
	content    fyne.CanvasObject
	normal     color.Color
	hover      color.Color

	mu       sync.Mutex
	hovered  bool
	flashing bool

	OnTapped func()
}

// NewPillButton shows icon when it is non-nil, glyph otherwise.
func NewPillButton(icon fyne.Resource, glyph string, tapped func()) *PillButton {
	p := &PillButton{
		normal:   apptheme.Accent,
		hover:    apptheme.Adjust(apptheme.Accent, HoverFactor),
		OnTapped: tapped,
	}
	p.background = canvas.NewRectangle(p.normal)
	p.background.CornerRadius = pillHeight / 2
	p.background.SetMinSize(fyne.NewSize(pillWidth, pillHeight))

	if icon != nil {
		img := canvas.NewImageFromResource(icon)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(pillHeight-12, pillHeight-12))
		p.content = img
	} else {
		text := canvas.NewText(glyph, apptheme.White)
		text.TextSize = 20
		text.Alignment = fyne.TextAlignCenter
		p.content = text
	}

	p.ExtendBaseWidget(p)
	return p
}

func (p *PillButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(p.background, container.NewCenter(p.content)))
}

// Color is the current fill.
func (p *PillButton) Color() color.Color {
	return p.background.FillColor
}

func (p *PillButton) MouseIn(*desktop.MouseEvent) {
	p.mu.Lock()
	p.hovered = true
	p.mu.Unlock()
	p.setFill(p.hover)
}

func (p *PillButton) MouseMoved(*desktop.MouseEvent) {}

func (p *PillButton) MouseOut() {
	p.mu.Lock()
	p.hovered = false
	flashing := p.flashing
	p.mu.Unlock()
	if !flashing {
		p.setFill(p.normal)
	}
}

// Tapped flashes the pill dark, then runs OnTapped once the flash ends.
func (p *PillButton) Tapped(*fyne.PointEvent) {
	p.mu.Lock()
	if p.flashing {
		p.mu.Unlock()
		return
	}
	p.flashing = true
	p.mu.Unlock()

	p.setFill(p.hover)
	time.AfterFunc(FlashDuration, func() {
		fyne.Do(p.endFlash)
	})
}

func (p *PillButton) endFlash() {
	p.mu.Lock()
	p.flashing = false
	hovered := p.hovered
	p.mu.Unlock()

	if hovered {
		p.setFill(p.hover)
	} else {
		p.setFill(p.normal)
	}
	if p.OnTapped != nil {
		p.OnTapped()
	}
}

func (p *PillButton) setFill(c color.Color) {
	p.background.FillColor = c
	p.background.Refresh()
}
