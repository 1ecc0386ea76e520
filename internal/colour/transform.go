package colour

import "math"

// RotateHue shifts a hue by delta degrees, wrapping into [0,360).
func RotateHue(hue, delta int) int {
	return NormaliseHue(hue + delta)
}

// HueDistance calculates the angular distance between two hues on the color wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 int) int {
	diff := NormaliseHue(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// RotatePalette returns a copy of swatches with every hue shifted by delta.
// Saturation, lightness and alpha are held; all formats are regenerated.
func RotatePalette(swatches []Swatch, delta int) []Swatch {
	rotated := make([]Swatch, len(swatches))
	for i, s := range swatches {
		rotated[i] = s.WithHue(RotateHue(s.Hue, delta))
	}
	return rotated
}

// Triad returns the hue and its two companions 120 and 240 degrees away.
func Triad(hue int) [3]int {
	return [3]int{
		NormaliseHue(hue),
		RotateHue(hue, 120),
		RotateHue(hue, 240),
	}
}

// TriadHex returns the reference colour followed by its two triad companions,
// which share its saturation and lightness.
func TriadHex(hex string) [3]string {
	hsl := HexToHSL(hex)
	hues := Triad(hsl.H)
	return [3]string{
		NormaliseHex(hex),
		HSLToHex(hues[1], hsl.S, hsl.L),
		HSLToHex(hues[2], hsl.S, hsl.L),
	}
}

// Harmony is a named set of hues derived from a base hue.
type Harmony struct {
	Name string `json:"name"`
	Hues []int  `json:"hues"`
}

// Harmonies returns the complementary, analogous and triadic schemes for a hue.
func Harmonies(base int) []Harmony {
	base = NormaliseHue(base)
	triad := Triad(base)
	return []Harmony{
		{Name: "complementary", Hues: []int{base, RotateHue(base, 180)}},
		{Name: "analogous", Hues: []int{RotateHue(base, -30), base, RotateHue(base, 30)}},
		{Name: "triadic", Hues: triad[:]},
	}
}

// WheelHue converts a point relative to the centre of a hue wheel into a hue.
// The top of the wheel (negative y) is 0 degrees and hue increases clockwise
// in screen coordinates.
func WheelHue(x, y float64) int {
	angle := math.Atan2(y, x) * 180 / math.Pi
	return NormaliseHue(round(math.Mod(angle+360+90, 360)))
}
