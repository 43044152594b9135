package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"lingrow/internal/imaging"
	"lingrow/internal/logger"

	"fyne.io/fyne/v2"
)

const component = "Assets"

// Glyphs stand in for navigation icons whose image is missing.
var Glyphs = map[string]string{
	"home":    "🏠",
	"explore": "🌍",
	"write":   "✍️",
	"profile": "👤",
}

// Glyph returns the fallback text for a navigation slot, or the name itself.
func Glyph(name string) string {
	if g, ok := Glyphs[name]; ok {
		return g
	}
	return name
}

// IconSet holds the icons that loaded. It belongs to one window.
type IconSet struct {
	icons map[string]fyne.Resource
}

func (s *IconSet) Get(name string) (fyne.Resource, bool) {
	if s == nil {
		return nil, false
	}
	r, ok := s.icons[name]
	return r, ok
}

func (s *IconSet) Names() []string {
	names := make([]string, 0, len(s.icons))
	for n := range s.icons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadIcons tries every path and keeps whatever decodes, thumbnailed to size.
// Missing files are skipped silently; broken ones are logged.
func LoadIcons(paths map[string]string, size int, log logger.Logger) *IconSet {
	set := &IconSet{icons: make(map[string]fyne.Resource, len(paths))}
	for name, path := range paths {
		res, err := loadResource(path, size, size)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Warning(component, "icon unusable, using glyph", map[string]interface{}{
					"icon":  name,
					"path":  path,
					"error": err.Error(),
				})
			}
			continue
		}
		set.icons[name] = res
	}
	log.Debug(component, "icons loaded", map[string]interface{}{
		"loaded": set.Names(),
		"wanted": len(paths),
	})
	return set
}

// LoadLogo returns the logo thumbnailed to size, if it exists and decodes.
func LoadLogo(path string, size int, log logger.Logger) (fyne.Resource, bool) {
	res, err := loadResource(path, size, size)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warning(component, "logo unusable", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	return res, true
}

func loadResource(path string, maxW, maxH int) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}
	thumb, err := imaging.Thumbnail(img, maxW, maxH)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(thumb)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(filepath.Base(path), encoded), nil
}

// Generate draws the placeholder logo and icons under root and logs each file.
func Generate(root string, log logger.Logger) error {
	files, err := imaging.Generate(root)
	for _, f := range files {
		log.Info(component, "saved", map[string]interface{}{"kind": f.Kind, "path": f.Path})
	}
	if err != nil {
		return fmt.Errorf("generate assets: %w", err)
	}
	return nil
}
