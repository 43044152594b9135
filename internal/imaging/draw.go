package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"lingrow/internal/opencv/safe"

	"gocv.io/x/gocv"
)

var (
	logoBackground = color.RGBA{R: 253, G: 232, B: 232, A: 255}
	accent         = color.RGBA{R: 127, G: 166, B: 173, A: 255}
	paper          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	transparent    = color.RGBA{R: 255, G: 255, B: 255, A: 0}
)

const (
	LogoWidth  = 420
	LogoHeight = 200
	IconCanvas = 128
)

// IconKinds are the navigation icons the generator knows how to draw.
var IconKinds = []string{"home", "explore", "write", "profile"}

// DrawLogo renders the open book mark followed by the app name.
func DrawLogo(width, height int) (*safe.Mat, error) {
	m, err := safe.NewFilledMat(height, width, logoBackground)
	if err != nil {
		return nil, fmt.Errorf("logo canvas: %w", err)
	}

	bookW := int(float64(width) * 0.32)
	bookH := int(float64(height) * 0.7)
	bx := 28
	by := (height - bookH) / 2
	rx := bx + bookW/2

	err = m.Draw(func(img *gocv.Mat) {
		fillPoly(img, paper, []image.Point{
			image.Pt(bx, by+bookH/2), image.Pt(bx+bookW/2, by), image.Pt(bx+bookW/2, by+bookH),
		})
		fillPoly(img, paper, []image.Point{
			image.Pt(rx, by), image.Pt(rx+bookW/2, by+bookH/2), image.Pt(rx, by+bookH),
		})

		gocv.Line(img, image.Pt(bx, by+bookH/2), image.Pt(bx+bookW/2, by), accent, 4)
		gocv.Line(img, image.Pt(bx+bookW/2, by), image.Pt(rx+bookW/2, by+bookH/2), accent, 4)
		gocv.Line(img, image.Pt(bx+bookW/2, by+bookH), image.Pt(rx+bookW/2, by+bookH/2), accent, 4)

		tx := bx + bookW + 20
		ty := height/2 + 18
		gocv.PutText(img, "Lingrow", image.Pt(tx, ty), gocv.FontHersheyDuplex, 1.6, accent, 3)
	})
	if err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// DrawIcon renders one navigation icon on a transparent square canvas.
// Unknown kinds are drawn as their name.
func DrawIcon(kind string, size int) (*safe.Mat, error) {
	m, err := safe.NewFilledMat(size, size, transparent)
	if err != nil {
		return nil, fmt.Errorf("icon canvas: %w", err)
	}

	// Offsets are laid out on the IconCanvas grid and scaled to size.
	sc := func(v int) int { return v * size / IconCanvas }
	th := func(v int) int { return max(1, sc(v)) }

	cx, cy := size/2, size/2
	err = m.Draw(func(img *gocv.Mat) {
		switch kind {
		case "home":
			roofH := size / 3
			fillPoly(img, accent, []image.Point{image.Pt(cx, cy-roofH), image.Pt(cx-sc(36), cy), image.Pt(cx+sc(36), cy)})
			gocv.Rectangle(img, image.Rect(cx-sc(40), cy, cx+sc(40), cy+sc(40)), accent, th(6))
		case "explore":
			r := sc(40)
			gocv.Circle(img, image.Pt(cx, cy), r, accent, th(6))
			gocv.Line(img, image.Pt(cx, cy-r), image.Pt(cx, cy+r), accent, th(3))
			gocv.Line(img, image.Pt(cx-r, cy), image.Pt(cx+r, cy), accent, th(3))
		case "write":
			gocv.Line(img, image.Pt(cx-sc(36), cy+sc(18)), image.Pt(cx+sc(36), cy-sc(18)), accent, th(8))
			fillPoly(img, accent, []image.Point{image.Pt(cx+sc(36), cy-sc(18)), image.Pt(cx+sc(42), cy-sc(12)), image.Pt(cx+sc(30), cy-sc(6))})
		case "profile":
			gocv.Ellipse(img, image.Pt(cx, cy-sc(20)), image.Pt(sc(28), sc(14)), 0, 0, 360, accent, th(6))
			gocv.Rectangle(img, image.Rect(cx-sc(36), cy-sc(6), cx+sc(36), cy+sc(30)), accent, th(6))
		default:
			scale := 0.6 * float64(size) / IconCanvas
			gocv.PutText(img, kind, image.Pt(sc(10), sc(30)), gocv.FontHersheySimplex, scale, accent, th(2))
		}
	})
	if err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// GeneratedFile is one asset written by Generate.
type GeneratedFile struct {
	Kind string
	Path string
}

// Generate writes assets/lingrow_logo.png and icons/<kind>.png under root.
func Generate(root string) ([]GeneratedFile, error) {
	iconsDir := filepath.Join(root, "icons")
	assetsDir := filepath.Join(root, "assets")
	for _, dir := range []string{iconsDir, assetsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	var written []GeneratedFile

	logo, err := DrawLogo(LogoWidth, LogoHeight)
	if err != nil {
		return written, err
	}
	logoPath := filepath.Join(assetsDir, "lingrow_logo.png")
	err = logo.Write(logoPath)
	logo.Close()
	if err != nil {
		return written, err
	}
	written = append(written, GeneratedFile{Kind: "logo", Path: logoPath})

	for _, kind := range IconKinds {
		icon, err := DrawIcon(kind, IconCanvas)
		if err != nil {
			return written, fmt.Errorf("draw %s: %w", kind, err)
		}
		path := filepath.Join(iconsDir, kind+".png")
		err = icon.Write(path)
		icon.Close()
		if err != nil {
			return written, err
		}
		written = append(written, GeneratedFile{Kind: kind, Path: path})
	}

	return written, nil
}

func fillPoly(img *gocv.Mat, c color.RGBA, pts []image.Point) {
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer pv.Close()
	gocv.FillPoly(img, pv, c)
}
