package colour

import (
	"image/color"
	"math"
)

// TextTone is the recommended text colour for content painted on a background.
type TextTone int

const (
	// TextDark is used on light backgrounds.
	TextDark TextTone = iota
	// TextLight is used on dark backgrounds.
	TextLight
)

// Text colour tokens.
const (
	DarkTextHex  = "#0F172A"
	LightTextHex = "#F8FAFC"

	// Chip colours sit behind a text token so the token itself stays readable.
	chipBehindLight = "#111827"
	chipBehindDark  = "#FFFFFF"

	// textLuminanceThreshold is the luminance above which dark text is chosen.
	textLuminanceThreshold = 0.6
)

// String returns "dark" or "light".
func (t TextTone) String() string {
	if t == TextDark {
		return "dark"
	}
	return "light"
}

// Hex returns the text colour token for the tone.
func (t TextTone) Hex() string {
	if t == TextDark {
		return DarkTextHex
	}
	return LightTextHex
}

// ChipHex returns the colour of the chip a text token is displayed on.
func (t TextTone) ChipHex() string {
	if t == TextDark {
		return chipBehindDark
	}
	return chipBehindLight
}

// PerceivedLuminance is the weighted channel brightness of a colour over
// channels normalised to [0,1]. No gamma linearisation is applied.
func PerceivedLuminance(rgb RGB) float64 {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// BestTextColor picks dark text for backgrounds brighter than 0.6 perceived
// luminance and light text otherwise.
func BestTextColor(hex string) TextTone {
	if PerceivedLuminance(HexToRGB(hex)) > textLuminanceThreshold {
		return TextDark
	}
	return TextLight
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := linearise(float64(r>>8) / 255.0)
	gf := linearise(float64(g>>8) / 255.0)
	bf := linearise(float64(b>>8) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// linearise applies sRGB gamma expansion to a colour component.
func linearise(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MinContrast returns the smallest pairwise WCAG contrast ratio across the given
// colours, rounded to two decimals. Fewer than two colours yield 0.
func MinContrast(colours []RGB) float64 {
	minRatio := math.Inf(1)
	for i := 0; i < len(colours); i++ {
		for j := i + 1; j < len(colours); j++ {
			ratio := ContrastRatio(colours[i].Color(), colours[j].Color())
			if ratio < minRatio {
				minRatio = ratio
			}
		}
	}
	if math.IsInf(minRatio, 1) {
		return 0
	}
	return math.Round(minRatio*100) / 100
}
