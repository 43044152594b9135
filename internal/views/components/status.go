package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Ready"

// StatusBar shows the last action and the loaded image.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	imageInfo   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel(readyStatus),
		imageInfo:   widget.NewLabel("No image loaded"),
	}
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.container = container.NewBorder(nil, nil, nil, sb.imageInfo, sb.statusLabel)
	return sb
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetImageInfo(name string, width, height int) {
	sb.imageInfo.SetText(fmt.Sprintf("%s %dx%d", name, width, height))
}

func (sb *StatusBar) GetImageInfo() string {
	return sb.imageInfo.Text
}

func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(readyStatus)
	sb.imageInfo.SetText("No image loaded")
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
