package palette

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

const (
	// lowContrastThreshold is the WCAG AA ratio for normal text.
	lowContrastThreshold = 4.5

	lowContrastNote  = "Low contrast detected, consider adjusting lightness or saturation."
	goodContrastNote = "Overall contrast suitable for standard text."
	customNote       = "Custom"

	// maxVariantSwatches is how many colours of an AI variant are previewed.
	maxVariantSwatches = 5
)

// Contrast is the palette-wide contrast summary shown next to a palette.
type Contrast struct {
	MinRatio float64 `json:"min_ratio"`
	Note     string  `json:"note"`

	// Custom marks a placeholder summary for a palette edited locally, for
	// which no ratio has been computed.
	Custom bool `json:"custom,omitempty"`
}

// CustomContrast is the placeholder used after any local edit.
func CustomContrast() Contrast {
	return Contrast{Note: customNote, Custom: true}
}

// MeasureContrast computes the minimum pairwise WCAG contrast of a palette.
func MeasureContrast(swatches []colour.Swatch) Contrast {
	rgbs := make([]colour.RGB, len(swatches))
	for i, s := range swatches {
		rgbs[i] = s.RGB()
	}
	ratio := colour.MinContrast(rgbs)
	note := goodContrastNote
	if ratio < lowContrastThreshold {
		note = lowContrastNote
	}
	return Contrast{MinRatio: ratio, Note: note}
}

// String renders the summary for display.
func (c Contrast) String() string {
	ratio := "-"
	if !c.Custom {
		ratio = strconv.FormatFloat(c.MinRatio, 'f', -1, 64)
	}
	return fmt.Sprintf("Minimum contrast: %s (%s)", ratio, c.Note)
}

// Record is a colour record as exchanged with the palette service.
type Record struct {
	Name       string         `json:"name"`
	Hue        int            `json:"hue"`
	Saturation int            `json:"saturation"`
	Lightness  int            `json:"lightness"`
	Formats    colour.Formats `json:"formats"`
	Text       string         `json:"text,omitempty"`
}

// Swatch rebuilds the record from its hue, saturation and lightness so every
// format is regenerated consistently. Alpha is recovered from the rgba format.
func (r Record) Swatch() colour.Swatch {
	hsl := colour.HSL{H: r.Hue, S: r.Saturation, L: r.Lightness}
	return colour.NewSwatch(r.Name, hsl, parseAlpha(r.Formats.RGBA))
}

// RecordFromSwatch converts a swatch back into its wire form.
func RecordFromSwatch(s colour.Swatch) Record {
	return Record{
		Name:       s.Name,
		Hue:        s.Hue,
		Saturation: s.Saturation,
		Lightness:  s.Lightness,
		Formats:    s.Formats,
		Text:       s.TextTone().Hex(),
	}
}

// parseAlpha reads the last component of "rgba(r, g, b, a)".
func parseAlpha(rgba string) float64 {
	idx := strings.LastIndex(rgba, ",")
	if idx < 0 {
		return colour.DefaultAlpha
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rgba[idx+1:]), ")")), 64)
	if err != nil {
		return colour.DefaultAlpha
	}
	return colour.ClampAlpha(v)
}

// Result is a generated palette as delivered by the palette service.
type Result struct {
	Sentiment   string           `json:"sentiment,omitempty"`
	Idea        string           `json:"idea,omitempty"`
	Profile     string           `json:"profile,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Style       string           `json:"style,omitempty"`
	BrandHint   string           `json:"brand_hint,omitempty"`
	Palette     []Record         `json:"palette"`
	Contrast    *Contrast        `json:"contrast,omitempty"`
	Harmony     []colour.Harmony `json:"harmony,omitempty"`
	AINotes     []string         `json:"ai_notes,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// DecodeResult parses a result payload.
func DecodeResult(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode palette result: %w", err)
	}
	return &r, nil
}

// Swatches converts the result's palette into swatches.
func (r *Result) Swatches() ([]colour.Swatch, error) {
	if r == nil || len(r.Palette) == 0 {
		return nil, ErrEmptyPalette
	}
	swatches := make([]colour.Swatch, len(r.Palette))
	for i, rec := range r.Palette {
		swatches[i] = rec.Swatch()
	}
	return swatches, nil
}

// ResultFromHexes builds a result from plain hex colours, named "Color N".
func ResultFromHexes(hexes []string, alpha float64) (*Result, error) {
	r := &Result{Palette: make([]Record, 0, len(hexes))}
	for i, hex := range hexes {
		if _, err := colour.ParseHex(hex); err != nil {
			return nil, err
		}
		s := colour.SwatchFromHex(fmt.Sprintf("Color %d", i+1), hex, alpha)
		r.Palette = append(r.Palette, RecordFromSwatch(s))
	}
	return r, nil
}

// Suggestions is the set of AI palette variants. Variants are only displayed
// and are never merged into the active palette.
type Suggestions struct {
	Palettes []Result `json:"palettes"`
}

// DecodeSuggestions parses an AI variants payload.
func DecodeSuggestions(data []byte) (*Suggestions, error) {
	var s Suggestions
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode palette suggestions: %w", err)
	}
	return &s, nil
}

// Variant is the display form of one suggested palette.
type Variant struct {
	Title string   `json:"title"`
	Hexes []string `json:"hexes"`
}

// Variants returns a titled preview of each suggested palette.
func (s *Suggestions) Variants() []Variant {
	if s == nil {
		return nil
	}
	variants := make([]Variant, 0, len(s.Palettes))
	for i, p := range s.Palettes {
		style := p.Style
		if style == "" {
			style = "base"
		}
		v := Variant{Title: fmt.Sprintf("AI variant %d (%s)", i+1, style)}
		for j, rec := range p.Palette {
			if j == maxVariantSwatches {
				break
			}
			v.Hexes = append(v.Hexes, rec.Swatch().Hex())
		}
		variants = append(variants, v)
	}
	return variants
}
