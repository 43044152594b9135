package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	BackgroundHex = "#fde8e8"
	CardHex       = "#fff6f6"
	AccentHex     = "#7fa6ad"
)

var (
	Background = MustParseHex(BackgroundHex)
	Card       = MustParseHex(CardHex)
	Accent     = MustParseHex(AccentHex)
	White      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ParseHex reads "#rrggbb" or "rrggbb".
func ParseHex(hex string) (color.NRGBA, error) {
	h := strings.TrimLeft(hex, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, nil
}

func MustParseHex(hex string) color.NRGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func ToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AdjustColor lightens (factor > 0) or darkens (factor < 0) each channel by
// v + v*factor, clamped to 0..255. Input that is not a 6 digit hex color is
// returned with its leading '#' removed.
func AdjustColor(hex string, factor float64) string {
	c, err := ParseHex(hex)
	if err != nil {
		return strings.TrimLeft(hex, "#")
	}
	return ToHex(Adjust(c, factor))
}

func Adjust(c color.NRGBA, factor float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) + float64(v)*factor
		n := int(f)
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
