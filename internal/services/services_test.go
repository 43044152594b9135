package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lingrow/internal/models"
	"lingrow/internal/store"
	"lingrow/internal/suggest"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uriReader struct {
	io.Reader
	uri    fyne.URI
	closed bool
}

func (r *uriReader) URI() fyne.URI { return r.uri }
func (r *uriReader) Close() error  { r.closed = true; return nil }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 127, G: 166, B: 173, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingrow_mockup.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 720, 400), 0o644))

	state := models.NewMockupState()
	svc := NewImageService(state, nil)
	m, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "png", m.Format)
	assert.Equal(t, 720, m.Width())
	assert.Equal(t, image.Rect(0, 0, 360, 200), m.Card.Bounds())
	assert.Equal(t, image.Rect(0, 0, 48, 27), m.Logo.Bounds())
	assert.Equal(t, "lingrow_mockup.png", state.Title())
}

func TestLoadFileFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(good, pngBytes(t, 10, 10), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))

	state := models.NewMockupState()
	svc := NewImageService(state, nil)
	_, err := svc.LoadFile(context.Background(), good)
	require.NoError(t, err)

	_, err = svc.LoadFile(context.Background(), bad)
	assert.Error(t, err)
	_, err = svc.LoadFile(context.Background(), filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
	assert.Equal(t, "good.png", state.Title())
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewImageService(models.NewMockupState(), nil).LoadFile(context.Background(), path)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestLoadFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewImageService(models.NewMockupState(), nil).LoadFile(ctx, "whatever.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.png")
	r := &uriReader{Reader: bytes.NewReader(pngBytes(t, 20, 10)), uri: storage.NewFileURI(path)}

	state := models.NewMockupState()
	m, err := NewImageService(state, nil).LoadReader(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, r.closed)
	assert.Equal(t, path, m.Path)
	assert.Same(t, m.Image, m.Card)
	assert.Equal(t, "picked.png", state.Title())
}

func newDraftService(t *testing.T) (*DraftService, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), store.DefaultPath), nil)
	return NewDraftService(st, models.NewDraftState(), nil), st
}

func TestSuggest(t *testing.T) {
	ds, _ := newDraftService(t)

	p, ok := ds.Suggest(suggest.Cultural, "  hey buddy\n")
	require.True(t, ok)
	assert.Equal(t, "hey buddy", p.Input)
	assert.Equal(t, "--- Cultural ---\nhey friend"+suggest.CulturalNote, p.Text)
	assert.Equal(t, p.Output, suggest.Rewritten(p.Changes))

	kind, preview, ok := ds.draft.Preview()
	require.True(t, ok)
	assert.Equal(t, suggest.Cultural, kind)
	assert.Equal(t, p.Text, preview)
}

func TestSuggestIgnoresBlankText(t *testing.T) {
	ds, _ := newDraftService(t)
	for _, text := range []string{"", "   ", "\n\t"} {
		_, ok := ds.Suggest(suggest.Professional, text)
		assert.False(t, ok, "%q", text)
	}
	_, _, ok := ds.draft.Preview()
	assert.False(t, ok)
}

func TestSuggestUnknownKind(t *testing.T) {
	ds, _ := newDraftService(t)
	_, ok := ds.Suggest(suggest.Kind(9), "text")
	assert.False(t, ok)
}

func TestSave(t *testing.T) {
	ds, st := newDraftService(t)

	preview := FormatPreview(suggest.Professional, "Going to go.") + "\n"
	entry, err := ds.Save("lingrow_mockup.png", " gonna go. \n", preview)
	require.NoError(t, err)
	assert.Equal(t, "gonna go.", entry.Original)

	entries := st.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, "lingrow_mockup.png", entries[0].Title)
	got, ok := entries[0].Preview()
	require.True(t, ok)
	assert.Equal(t, "--- Professional ---\nGoing to go.", got)

	_, err = ds.Save(models.UntitledTitle, "second", "")
	require.NoError(t, err)
	recent := ds.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, models.UntitledTitle, recent[0].Title)
}

func TestSaveWriteFailure(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "missing", "dir", "saved.json"), nil)
	ds := NewDraftService(st, models.NewDraftState(), nil)
	_, err := ds.Save("t", "o", "p")
	assert.Error(t, err)
}
