package views

import (
	"lingrow/internal/suggest"
	"lingrow/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	WriteTitle  = "Write"
	writeWidth  = 600
	writeHeight = 400
)

// WriteView is the secondary window with the input, the suggestion preview
// and the save button.
type WriteView struct {
	window  fyne.Window
	input   *widget.Entry
	output  *widget.Entry
	diff    *widget.RichText
	buttons map[suggest.Kind]*widget.Button
	save    *widget.Button

	suggestHandler func(kind suggest.Kind, text string)
	saveHandler    func(original, preview string)
}

func NewWriteView(app fyne.App) *WriteView {
	wv := &WriteView{
		window:  app.NewWindow(WriteTitle),
		buttons: make(map[suggest.Kind]*widget.Button, 3),
	}
	wv.initializeComponents()
	wv.buildLayout()
	return wv
}

func (wv *WriteView) initializeComponents() {
	wv.input = widget.NewMultiLineEntry()
	wv.input.SetMinRowsVisible(6)
	wv.input.Wrapping = fyne.TextWrapWord

	wv.output = widget.NewMultiLineEntry()
	wv.output.SetMinRowsVisible(6)
	wv.output.Wrapping = fyne.TextWrapWord
	wv.output.Disable()

	wv.diff = widget.NewRichText()
	wv.diff.Wrapping = fyne.TextWrapWord

	for _, kind := range suggest.Kinds() {
		kind := kind
		wv.buttons[kind] = widget.NewButton(kind.String(), func() {
			if wv.suggestHandler != nil {
				wv.suggestHandler(kind, wv.input.Text)
			}
		})
	}
	wv.save = widget.NewButton("Save", func() {
		if wv.saveHandler != nil {
			wv.saveHandler(wv.input.Text, wv.output.Text)
		}
	})
	wv.save.Importance = widget.HighImportance
}

func (wv *WriteView) buildLayout() {
	controls := container.NewHBox()
	for _, kind := range suggest.Kinds() {
		controls.Add(wv.buttons[kind])
	}
	controls.Add(layout.NewSpacer())
	controls.Add(wv.save)

	label := widget.NewLabelWithStyle("Write something:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	body := container.NewGridWithRows(2, wv.input, wv.output)
	wv.window.SetContent(container.NewBorder(
		label,
		container.NewVBox(wv.diff, controls),
		nil, nil,
		body,
	))
	wv.window.Resize(fyne.NewSize(writeWidth, writeHeight))
}

func (wv *WriteView) SetSuggestHandler(handler func(kind suggest.Kind, text string)) {
	wv.suggestHandler = handler
}

func (wv *WriteView) SetSaveHandler(handler func(original, preview string)) {
	wv.saveHandler = handler
}

// SetPreview replaces the read-only output and the diff line.
func (wv *WriteView) SetPreview(text string, changes []suggest.Change) {
	wv.output.SetText(text)
	wv.diff.Segments = components.DiffSegments(changes)
	wv.diff.Refresh()
}

func (wv *WriteView) Input() string {
	return wv.input.Text
}

func (wv *WriteView) Preview() string {
	return wv.output.Text
}

func (wv *WriteView) Button(kind suggest.Kind) *widget.Button {
	return wv.buttons[kind]
}

func (wv *WriteView) SaveButton() *widget.Button {
	return wv.save
}

func (wv *WriteView) InputEntry() *widget.Entry {
	return wv.input
}

func (wv *WriteView) GetWindow() fyne.Window {
	return wv.window
}

func (wv *WriteView) SetOnClosed(fn func()) {
	wv.window.SetOnClosed(fn)
}

func (wv *WriteView) Show() {
	wv.window.Show()
}

func (wv *WriteView) Close() {
	wv.window.Close()
}
