package components

import (
	"lingrow/internal/suggest"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DiffSegments renders a suggestion diff: inserted runs bold in the success
// colour, deleted runs italic in the error colour.
func DiffSegments(changes []suggest.Change) []widget.RichTextSegment {
	segments := make([]widget.RichTextSegment, 0, len(changes))
	for _, c := range changes {
		style := widget.RichTextStyleInline
		switch c.Type {
		case suggest.Insert:
			style.ColorName = theme.ColorNameSuccess
			style.TextStyle = fyne.TextStyle{Bold: true}
		case suggest.Delete:
			style.ColorName = theme.ColorNameError
			style.TextStyle = fyne.TextStyle{Italic: true}
		}
		segments = append(segments, &widget.TextSegment{Text: c.Text, Style: style})
	}
	return segments
}
