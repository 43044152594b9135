package views

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"lingrow/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	recentTitle  = "Recent improvements"
	emptyRecent  = "Nothing saved yet."
	previewChars = 80
)

// RecentRow is one saved entry formatted for display.
type RecentRow struct {
	Heading string
	Detail  string
}

// RecentRows formats entries, newest first as given.
func RecentRows(entries []store.Entry) []RecentRow {
	rows := make([]RecentRow, 0, len(entries))
	for _, e := range entries {
		detail, ok := e.Preview()
		if !ok || detail == "" {
			detail = e.Original
		}
		rows = append(rows, RecentRow{
			Heading: fmt.Sprintf("%s · %s", e.Title, e.Time().Format(time.DateTime)),
			Detail:  shorten(oneLine(detail), previewChars),
		})
	}
	return rows
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func displayName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// RecentDialog lists saved entries and can be refreshed while open.
type RecentDialog struct {
	dialog  dialog.Dialog
	list    *widget.List
	empty   *widget.Label
	rows    []RecentRow
	visible bool
}

func NewRecentDialog(window fyne.Window, rows []RecentRow) *RecentDialog {
	rd := &RecentDialog{empty: widget.NewLabel(emptyRecent)}
	rd.list = widget.NewList(
		func() int { return len(rd.rows) },
		func() fyne.CanvasObject {
			heading := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			detail := widget.NewLabel("")
			detail.Truncation = fyne.TextTruncateEllipsis
			return container.NewVBox(heading, detail)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(rd.rows) {
				return
			}
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(rd.rows[id].Heading)
			box.Objects[1].(*widget.Label).SetText(rd.rows[id].Detail)
		},
	)
	rd.SetRows(rows)

	content := container.NewStack(rd.empty, rd.list)
	rd.dialog = dialog.NewCustom(recentTitle, "Close", content, window)
	rd.dialog.SetOnClosed(func() { rd.visible = false })
	rd.dialog.Resize(fyne.NewSize(380, 420))
	return rd
}

func (rd *RecentDialog) SetRows(rows []RecentRow) {
	rd.rows = rows
	if len(rows) == 0 {
		rd.empty.Show()
		rd.list.Hide()
	} else {
		rd.empty.Hide()
		rd.list.Show()
	}
	rd.list.Refresh()
}

func (rd *RecentDialog) Rows() []RecentRow {
	return rd.rows
}

func (rd *RecentDialog) Show() {
	rd.visible = true
	rd.dialog.Show()
}

func (rd *RecentDialog) Hide() {
	rd.dialog.Hide()
}

func (rd *RecentDialog) Visible() bool {
	return rd.visible
}
