package controllers

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lingrow/internal/assets"
	"lingrow/internal/config"
	"lingrow/internal/logger"
	"lingrow/internal/models"
	"lingrow/internal/services"
	"lingrow/internal/store"
	"lingrow/internal/suggest"
	"lingrow/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	controller *MainController
	view       *views.MainView
	images     *services.ImageService
	store      *store.Store
	dir        string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	a := test.NewTempApp(t)
	dir := t.TempDir()

	cfg := config.Default()
	cfg.StorePath = filepath.Join(dir, store.DefaultPath)
	cfg.Debounce = 20 * time.Millisecond

	st := store.New(cfg.StorePath, logger.Nop{})
	images := services.NewImageService(models.NewMockupState(), logger.Nop{})
	mc := NewMainController(a, cfg, images, st, logger.Nop{})

	w := a.NewWindow(views.AppTitle)
	t.Cleanup(w.Close)
	mv := views.NewMainView(w, assets.LoadIcons(nil, 36, logger.Nop{}), nil)
	mc.SetMainView(mv)

	return &fixture{controller: mc, view: mv, images: images, store: st, dir: dir}
}

func TestWriteSuggestAndSave(t *testing.T) {
	f := newFixture(t)

	wv := f.controller.OpenWrite()
	assert.Equal(t, 1, f.controller.OpenWriteWindows())

	test.Type(wv.InputEntry(), "gonna go. ok then.")
	test.Tap(wv.Button(suggest.Professional))
	assert.Equal(t, "--- Professional ---\nGoing to go. Okay then.", wv.Preview())

	test.Tap(wv.SaveButton())
	entries := f.store.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, models.UntitledTitle, entries[0].Title)
	assert.Equal(t, "gonna go. ok then.", entries[0].Original)
	preview, ok := entries[0].Preview()
	require.True(t, ok)
	assert.Equal(t, "--- Professional ---\nGoing to go. Okay then.", preview)

	wv.Close()
	assert.Equal(t, 0, f.controller.OpenWriteWindows())
}

func TestBlankInputLeavesPreview(t *testing.T) {
	f := newFixture(t)
	wv := f.controller.OpenWrite()
	t.Cleanup(wv.Close)

	test.Tap(wv.Button(suggest.Cultural))
	assert.Empty(t, wv.Preview())
}

func TestSaveUsesImageTitle(t *testing.T) {
	f := newFixture(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	path := filepath.Join(f.dir, "lingrow_mockup.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	f.controller.LoadPath(path, true)
	require.Eventually(t, func() bool { return f.images.State().Loaded() }, time.Second, 5*time.Millisecond)

	wv := f.controller.OpenWrite()
	t.Cleanup(wv.Close)
	test.Type(wv.InputEntry(), "hey buddy")
	test.Tap(wv.SaveButton())

	entries := f.store.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, "lingrow_mockup.png", entries[0].Title)
	preview, _ := entries[0].Preview()
	assert.Empty(t, preview)
}

func TestStartWatchAndShutdown(t *testing.T) {
	f := newFixture(t)

	f.controller.StartWatch(context.Background())
	f.controller.OpenWrite()
	f.controller.OpenWrite()
	require.Equal(t, 2, f.controller.OpenWriteWindows())
	f.controller.CloseWindows()
	assert.Equal(t, 0, f.controller.OpenWriteWindows())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.controller.Shutdown(ctx))
	require.NoError(t, f.controller.Shutdown(ctx))
}

func TestShutdownWithoutWatch(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.controller.Shutdown(context.Background()))
}
