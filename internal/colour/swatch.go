package colour

// DefaultAlpha is the alpha used when a record carries none.
const DefaultAlpha = 0.85

// PinnedSaturation is the saturation hue and lightness slider edits produce.
const PinnedSaturation = 60

// Formats holds the derived string representations of a swatch.
type Formats struct {
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	RGBA string `json:"rgba"`
	HSL  string `json:"hsl"`
	HSLA string `json:"hsla"`
}

// Swatch is a single palette colour record. Formats are a cache of the colour
// fields and are only ever produced by NewSwatch or SwatchFromHex, so a Swatch
// value is never observed with stale formats.
type Swatch struct {
	Name       string  `json:"name"`
	Hue        int     `json:"hue"`
	Saturation int     `json:"saturation"`
	Lightness  int     `json:"lightness"`
	Alpha      float64 `json:"alpha"`
	Formats    Formats `json:"formats"`
}

// NewSwatch builds a swatch whose hex is derived from the given HSL.
func NewSwatch(name string, hsl HSL, alpha float64) Swatch {
	hsl = HSL{
		H: NormaliseHue(hsl.H),
		S: clampInt(hsl.S, 0, 100),
		L: clampInt(hsl.L, 0, 100),
	}
	return build(name, HSLToRGB(hsl.H, hsl.S, hsl.L), hsl, alpha)
}

// SwatchFromHex builds a swatch whose HSL is derived from the given hex.
func SwatchFromHex(name, hex string, alpha float64) Swatch {
	rgb := HexToRGB(hex)
	hsl := RGBToHSL(rgb)
	hsl.H = NormaliseHue(hsl.H)
	return build(name, rgb, hsl, alpha)
}

func build(name string, rgb RGB, hsl HSL, alpha float64) Swatch {
	alpha = ClampAlpha(alpha)
	return Swatch{
		Name:       name,
		Hue:        hsl.H,
		Saturation: hsl.S,
		Lightness:  hsl.L,
		Alpha:      alpha,
		Formats: Formats{
			Hex:  rgb.Hex(),
			RGB:  rgb.String(),
			RGBA: rgb.RGBA(alpha),
			HSL:  hsl.String(),
			HSLA: hsl.HSLA(alpha),
		},
	}
}

// Hex returns the swatch's canonical hex string.
func (s Swatch) Hex() string { return s.Formats.Hex }

// RGB returns the swatch's channels.
func (s Swatch) RGB() RGB { return HexToRGB(s.Formats.Hex) }

// HSL returns the swatch's hue, saturation and lightness.
func (s Swatch) HSL() HSL { return HSL{H: s.Hue, S: s.Saturation, L: s.Lightness} }

// TextTone returns the recommended text colour for content on this swatch.
func (s Swatch) TextTone() TextTone { return BestTextColor(s.Formats.Hex) }

// WithHue returns a copy with a new hue, holding saturation, lightness and alpha.
func (s Swatch) WithHue(hue int) Swatch {
	return NewSwatch(s.Name, HSL{H: hue, S: s.Saturation, L: s.Lightness}, s.Alpha)
}

// WithAlpha returns a copy with a new alpha, keeping the current hex.
func (s Swatch) WithAlpha(alpha float64) Swatch {
	return build(s.Name, s.RGB(), s.HSL(), alpha)
}

// Renamed returns a copy with a new display name.
func (s Swatch) Renamed(name string) Swatch {
	s.Name = name
	return s
}
