// Package colour converts between hex, RGB and HSL colour representations and
// derives presentation values (text contrast, hue transforms, UI roles) from
// palettes of colour records.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// RGBA returns the colour as "rgba(r, g, b, a)" with alpha rendered to two decimals.
func (rgb RGB) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, formatAlpha(alpha))
}

// Hex returns the colour as an uppercase hex string (e.g. "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Color converts the RGB value to an opaque color.Color.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// HSL holds integer hue (degrees), saturation (percent) and lightness (percent).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the colour as "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// HSLA returns the colour as "hsla(h, s%, l%, a)".
func (hsl HSL) HSLA(alpha float64) string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", hsl.H, hsl.S, hsl.L, formatAlpha(alpha))
}

// ParseHex parses "#RRGGBB", "RRGGBB" or the three digit shorthand into RGB.
// Unlike HexToRGB it reports malformed input, so it is the entry point for
// anything typed by a user.
func ParseHex(hex string) (RGB, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(clean) == 3 {
		clean = string([]byte{clean[0], clean[0], clean[1], clean[1], clean[2], clean[2]})
	}

	if len(clean) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits, got %d", hex, len(clean))
	}

	r, err := strconv.ParseUint(clean[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component in %q: %w", hex, err)
	}

	g, err := strconv.ParseUint(clean[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component in %q: %w", hex, err)
	}

	b, err := strconv.ParseUint(clean[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component in %q: %w", hex, err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// HexToRGB parses the three 2-digit channel segments of a hex colour.
// Callers are expected to pass 6 hex digits; malformed input yields black.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// NormaliseHex returns hex in canonical "#RRGGBB" uppercase form.
func NormaliseHex(hex string) string {
	return HexToRGB(hex).Hex()
}

// HexToHSL converts a hex colour to rounded HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// RGBToHSL converts RGB to HSL. Hue is rounded to the nearest degree and may be
// 360 for reds just below the wrap point; saturation and lightness are rounded
// to the nearest percent. Achromatic colours have hue and saturation 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l := (maxVal + minVal) / 2
	if maxVal == minVal {
		return HSL{H: 0, S: 0, L: round(l * 100)}
	}

	d := maxVal - minVal

	var s float64
	if l > 0.5 {
		s = d / (2 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: round(h), S: round(s * 100), L: round(l * 100)}
}

// HSLToRGB converts integer HSL to RGB using the chroma decomposition over
// six 60 degree hue sectors. Hue is taken modulo 360, saturation and lightness
// are clamped to [0,100], and each channel is clamped to [0,255].
func HSLToRGB(h, s, l int) RGB {
	hue := float64(NormaliseHue(h))
	sat := float64(clampInt(s, 0, 100)) / 100
	light := float64(clampInt(l, 0, 100)) / 100

	c := (1 - math.Abs(2*light-1)) * sat
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := light - c/2

	var r1, g1, b1 float64
	switch {
	case hue < 60:
		r1, g1 = c, x
	case hue < 120:
		r1, g1 = x, c
	case hue < 180:
		g1, b1 = c, x
	case hue < 240:
		g1, b1 = x, c
	case hue < 300:
		r1, b1 = x, c
	default:
		r1, b1 = c, x
	}

	return RGB{
		R: toChannel(r1 + m),
		G: toChannel(g1 + m),
		B: toChannel(b1 + m),
	}
}

// HSLToHex converts integer HSL to an uppercase "#RRGGBB" string.
func HSLToHex(h, s, l int) string {
	return HSLToRGB(h, s, l).Hex()
}

// NormaliseHue wraps any integer hue into [0,360).
func NormaliseHue(h int) int {
	return ((h % 360) + 360) % 360
}

// toChannel scales a [0,1] component to a rounded, clamped 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(clampInt(round(v*255), 0, 255))
}

// round rounds half up (toward positive infinity).
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatAlpha renders an alpha value clamped to [0,1] with two decimals.
func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(ClampAlpha(alpha), 'f', 2, 64)
}

// ClampAlpha clamps alpha into [0,1].
func ClampAlpha(alpha float64) float64 {
	if math.IsNaN(alpha) || alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
