package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"lingrow/internal/imaging"
	"lingrow/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{G: 255, A: 255})
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoadIconsSkipsMissingAndBroken(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, "icons", "home.png")
	broken := filepath.Join(dir, "icons", "explore.png")
	writePNG(t, home, 20, 20)
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0o644))

	set := LoadIcons(map[string]string{
		"home":    home,
		"explore": broken,
		"profile": filepath.Join(dir, "icons", "profile.png"),
	}, imaging.IconSize, logger.Nop{})

	res, ok := set.Get("home")
	require.True(t, ok)
	assert.Equal(t, "home.png", res.Name())
	assert.NotEmpty(t, res.Content())

	_, ok = set.Get("explore")
	assert.False(t, ok)
	_, ok = set.Get("profile")
	assert.False(t, ok)
	assert.Equal(t, []string{"home"}, set.Names())
}

func TestNilIconSet(t *testing.T) {
	var set *IconSet
	_, ok := set.Get("home")
	assert.False(t, ok)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "🏠", Glyph("home"))
	assert.Equal(t, "👤", Glyph("profile"))
	assert.Equal(t, "other", Glyph("other"))
}

func TestLoadLogo(t *testing.T) {
	dir := t.TempDir()
	_, ok := LoadLogo(filepath.Join(dir, "missing.png"), imaging.LogoSize, logger.Nop{})
	assert.False(t, ok)

	path := filepath.Join(dir, "logo.png")
	writePNG(t, path, 30, 10)
	res, ok := LoadLogo(path, imaging.LogoSize, logger.Nop{})
	require.True(t, ok)

	img, _, err := imaging.Decode(res.Content())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 10), img.Bounds())
}

func TestGenerateThenLoad(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Generate(root, logger.Nop{}))

	paths := map[string]string{}
	for _, kind := range imaging.IconKinds {
		paths[kind] = filepath.Join(root, "icons", kind+".png")
	}
	set := LoadIcons(paths, imaging.IconSize, logger.Nop{})
	assert.ElementsMatch(t, imaging.IconKinds, set.Names())

	res, ok := set.Get("write")
	require.True(t, ok)
	img, _, err := imaging.Decode(res.Content())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, imaging.IconSize, imaging.IconSize), img.Bounds())
}
