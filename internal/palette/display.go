package palette

import "github.com/jmylchreest/swatchbook/internal/colour"

// Display is what a swatch label needs: its formats and recommended text colour.
type Display struct {
	Index    int             `json:"index"`
	Name     string          `json:"name"`
	Hex      string          `json:"hex"`
	RGB      string          `json:"rgb"`
	HSL      string          `json:"hsl"`
	Text     colour.TextTone `json:"-"`
	TextHex  string          `json:"text"`
	ChipHex  string          `json:"chip"`
	Selected bool            `json:"selected"`
}

// Bundles returns the display bundle for every colour in a snapshot.
func Bundles(snap *Snapshot) []Display {
	out := make([]Display, 0, snap.Len())
	for i, s := range snap.All() {
		tone := s.TextTone()
		out = append(out, Display{
			Index:    i,
			Name:     s.Name,
			Hex:      s.Formats.Hex,
			RGB:      s.Formats.RGB,
			HSL:      s.Formats.HSL,
			Text:     tone,
			TextHex:  tone.Hex(),
			ChipHex:  tone.ChipHex(),
			Selected: i == snap.Selected(),
		})
	}
	return out
}

// LayoutBlock is one painted region of the page layout preview.
type LayoutBlock struct {
	Region  colour.Region `json:"region"`
	Hex     string        `json:"hex"`
	TextHex string        `json:"text"`
}

// Layout paints every layout region from a role assignment.
func Layout(a colour.Assignment) []LayoutBlock {
	regions := colour.AllRegions()
	blocks := make([]LayoutBlock, len(regions))
	for i, region := range regions {
		s := a.RegionSwatch(region)
		blocks[i] = LayoutBlock{
			Region:  region,
			Hex:     s.Hex(),
			TextHex: s.TextTone().Hex(),
		}
	}
	return blocks
}
