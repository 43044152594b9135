package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"

	"lingrow/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Box sizes used by the UI.
const (
	LogoSize    = 48
	CardWidth   = 360
	CardHeight  = 200
	IconSize    = 36
	AppIconSize = 64
)

// Decode reads any format registered with the image package (png, jpeg, gif).
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// FitSize scales width x height down to fit inside maxW x maxH keeping the
// aspect ratio. Sizes already inside the box are returned unchanged.
func FitSize(width, height, maxW, maxH int) (int, int) {
	if width <= maxW && height <= maxH {
		return width, height
	}
	scale := math.Min(float64(maxW)/float64(width), float64(maxH)/float64(height))
	w := int(math.Round(float64(width) * scale))
	h := int(math.Round(float64(height) * scale))
	return max(w, 1), max(h, 1)
}

// Thumbnail shrinks img to fit the box with area interpolation. It never
// enlarges.
func Thumbnail(img image.Image, maxW, maxH int) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	if err := safe.ValidateDimensions(maxW, maxH, "thumbnail"); err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return img, nil
	}

	src, err := safe.FromImage(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := src.Resize(w, h, gocv.InterpolationArea)
	if err != nil {
		return nil, fmt.Errorf("resize to %dx%d: %w", w, h, err)
	}
	defer dst.Close()

	return dst.ToImage()
}

// EncodePNG serializes img for use as an in-memory resource.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
