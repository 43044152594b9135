package components

import (
	"sync/atomic"
	"testing"
	"time"

	"lingrow/internal/assets"
	"lingrow/internal/logger"
	"lingrow/internal/suggest"
	apptheme "lingrow/internal/theme"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPillButtonHover(t *testing.T) {
	test.NewTempApp(t)

	p := NewPillButton(nil, assets.Glyph("write"), nil)
	assert.Equal(t, apptheme.Accent, p.Color())

	p.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, apptheme.Adjust(apptheme.Accent, HoverFactor), p.Color())

	p.MouseOut()
	assert.Equal(t, apptheme.Accent, p.Color())
}

func TestPillButtonFlashThenTap(t *testing.T) {
	test.NewTempApp(t)

	var taps atomic.Int32
	p := NewPillButton(nil, "✍️", func() { taps.Add(1) })

	start := time.Now()
	test.Tap(p)
	test.Tap(p)
	assert.Equal(t, int32(0), taps.Load())

	require.Eventually(t, func() bool { return taps.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), FlashDuration)
	assert.Equal(t, apptheme.Accent, p.Color())
}

func TestNavBarGlyphFallback(t *testing.T) {
	test.NewTempApp(t)

	nb := NewNavBar(assets.LoadIcons(map[string]string{}, 36, logger.Nop{}))
	assert.Equal(t, "🏠", nb.Home.Text)
	assert.Equal(t, "🌍", nb.Explore.Text)
	assert.Equal(t, "👤", nb.Profile.Text)

	var home, profile int
	nb.SetHomeHandler(func() { home++ })
	nb.SetProfileHandler(func() { profile++ })
	test.Tap(nb.Home)
	test.Tap(nb.Profile)
	test.Tap(nb.Explore)
	assert.Equal(t, 1, home)
	assert.Equal(t, 1, profile)
}

func TestImageCard(t *testing.T) {
	test.NewTempApp(t)

	card := NewMockupCard()
	assert.False(t, card.HasImage())
	assert.Equal(t, "Load Image", card.Button().Text)

	clicked := false
	card.SetActionHandler(func() { clicked = true })
	test.Tap(card.Button())
	assert.True(t, clicked)
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())
	sb.SetStatus("Image loaded")
	sb.SetImageInfo("lingrow_mockup.png", 720, 1280)
	assert.Equal(t, "Image loaded", sb.GetStatus())
	assert.Equal(t, "lingrow_mockup.png 720x1280", sb.GetImageInfo())
	sb.Reset()
	assert.Equal(t, "Ready", sb.GetStatus())
}

func TestDiffSegments(t *testing.T) {
	segments := DiffSegments([]suggest.Change{
		{Type: suggest.Equal, Text: "hey "},
		{Type: suggest.Delete, Text: "buddy"},
		{Type: suggest.Insert, Text: "friend"},
	})
	require.Len(t, segments, 3)

	equal := segments[0].(*widget.TextSegment)
	deleted := segments[1].(*widget.TextSegment)
	inserted := segments[2].(*widget.TextSegment)
	assert.Equal(t, "hey ", equal.Text)
	assert.True(t, equal.Style.Inline)
	assert.Equal(t, theme.ColorNameError, deleted.Style.ColorName)
	assert.True(t, deleted.Style.TextStyle.Italic)
	assert.Equal(t, theme.ColorNameSuccess, inserted.Style.ColorName)
	assert.True(t, inserted.Style.TextStyle.Bold)
}
