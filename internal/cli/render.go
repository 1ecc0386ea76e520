package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/swatchbook/internal/colour"
	"github.com/jmylchreest/swatchbook/internal/palette"
)

const previewWidth = 9

func chip(hex string) string {
	return colour.ColourPreviewWithText(colour.HexToRGB(hex), "Aa", previewWidth)
}

// withPreview prepends a preview column when previews are enabled.
func withPreview(preview bool, headers []string) []string {
	if !preview {
		return headers
	}
	return append([]string{"Preview"}, headers...)
}

func previewRow(preview bool, hex string, row []string) []string {
	if !preview {
		return row
	}
	return append([]string{chip(hex)}, row...)
}

func renderPalette(w io.Writer, bundles []palette.Display, preview bool) {
	table := NewTable(withPreview(preview, []string{"", "#", "Name", "Hex", "RGB", "HSL", "Text"}))
	for _, d := range bundles {
		marker := ""
		if d.Selected {
			marker = "*"
		}
		table.AddRow(previewRow(preview, d.Hex, []string{
			marker, strconv.Itoa(d.Index + 1), d.Name, d.Hex, d.RGB, d.HSL, d.TextHex,
		}))
	}
	fmt.Fprint(w, table.Render())
}

func renderRoles(w io.Writer, a colour.Assignment, preview bool) {
	table := NewTable(withPreview(preview, []string{"Role", "Hex", "Colour"}))
	for _, role := range colour.AllRoles() {
		s := a.Swatch(role)
		table.AddRow(previewRow(preview, s.Hex(), []string{string(role), s.Hex(), s.Name}))
	}
	fmt.Fprint(w, table.Render())
}

func renderLayout(w io.Writer, blocks []palette.LayoutBlock, preview bool) {
	table := NewTable(withPreview(preview, []string{"Region", "Hex", "Text"}))
	for _, b := range blocks {
		table.AddRow(previewRow(preview, b.Hex, []string{string(b.Region), b.Hex, b.TextHex}))
	}
	fmt.Fprint(w, table.Render())
}

func renderTriad(w io.Writer, triad [3]string, preview bool) {
	parts := make([]string, len(triad))
	for i, hex := range triad {
		if preview {
			parts[i] = colour.ColourPreviewWithText(colour.HexToRGB(hex), hex, previewWidth)
		} else {
			parts[i] = hex
		}
	}
	fmt.Fprintf(w, "Triad: %s\n", strings.Join(parts, " "))
}

func renderHarmonies(w io.Writer, harmonies []colour.Harmony) {
	for _, h := range harmonies {
		hues := make([]string, len(h.Hues))
		for i, hue := range h.Hues {
			hues[i] = strconv.Itoa(hue)
		}
		fmt.Fprintf(w, "%s: %s\n", h.Name, strings.Join(hues, ", "))
	}
}

func renderVariants(w io.Writer, variants []palette.Variant, preview bool) {
	if len(variants) == 0 {
		fmt.Fprintln(w, "No AI variants returned.")
		return
	}
	for _, v := range variants {
		fmt.Fprintln(w, v.Title)
		parts := make([]string, len(v.Hexes))
		for i, hex := range v.Hexes {
			if preview {
				parts[i] = colour.ColourPreviewWithText(colour.HexToRGB(hex), hex, previewWidth)
			} else {
				parts[i] = hex
			}
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
	}
}

// paletteReport is the JSON form of a loaded palette.
type paletteReport struct {
	Session   string            `json:"session"`
	Sentiment string            `json:"sentiment,omitempty"`
	Idea      string            `json:"idea,omitempty"`
	Profile   string            `json:"profile,omitempty"`
	BaseHue   int               `json:"base_hue"`
	Selected  int               `json:"selected"`
	Palette   []palette.Record  `json:"palette"`
	Contrast  palette.Contrast  `json:"contrast"`
	Roles     map[string]string `json:"roles,omitempty"`
	Triad     [3]string         `json:"triad"`
	Harmony   []colour.Harmony  `json:"harmony"`
	Notes     []string          `json:"notes,omitempty"`
}

func newPaletteReport(s *palette.Session, r *palette.Result) paletteReport {
	snap := s.Snapshot()
	rep := paletteReport{
		Session:  s.ID(),
		BaseHue:  s.BaseHue(),
		Selected: snap.Selected(),
		Contrast: s.Contrast(),
		Triad:    s.Triad(),
		Harmony:  s.Harmonies(),
	}
	if r != nil {
		rep.Sentiment, rep.Idea, rep.Profile = r.Sentiment, r.Idea, r.Profile
		rep.Notes = append(rep.Notes, r.AINotes...)
	}
	for _, sw := range snap.All() {
		rep.Palette = append(rep.Palette, palette.RecordFromSwatch(sw))
	}
	if a, ok := s.Roles(); ok {
		rep.Roles = make(map[string]string)
		for role, hex := range a.Roles() {
			rep.Roles[string(role)] = hex
		}
	}
	return rep
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
