package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		alpha  float64
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert COLOUR...",
		Short: "Convert colours between hex, RGB and HSL",
		Long: `Print every format of each colour along with the recommended text colour.

A colour is either a hex value ("#3366CC", "36C") or an HSL triple
("hsl(220, 60%, 50%)" or "220,60,50").`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("alpha") {
				alpha = a.cfg.DefaultAlpha
			}

			swatches := make([]colour.Swatch, 0, len(args))
			for _, arg := range args {
				s, err := parseColourArg(arg, alpha)
				if err != nil {
					return err
				}
				swatches = append(swatches, s)
			}

			out := cmd.OutOrStdout()
			if f == formatJSON {
				return writeJSON(out, swatches)
			}

			preview := a.showPreview(out)
			table := NewTable(withPreview(preview, []string{"Input", "Hex", "RGBA", "HSLA", "Text"}))
			for _, s := range swatches {
				table.AddRow(previewRow(preview, s.Hex(), []string{
					s.Name, s.Hex(), s.Formats.RGBA, s.Formats.HSLA, s.TextTone().Hex(),
				}))
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&alpha, "alpha", "a", colour.DefaultAlpha, "alpha used for the rgba and hsla formats")
	cmd.Flags().StringVarP(&format, "format", "f", string(formatText), "output format (text, json)")
	return cmd
}

// parseColourArg reads a hex colour or an HSL triple. The swatch is named after the input.
func parseColourArg(arg string, alpha float64) (colour.Swatch, error) {
	trimmed := strings.TrimSpace(arg)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "hsl") || strings.Contains(lower, ",") {
		hsl, err := parseHSL(lower)
		if err != nil {
			return colour.Swatch{}, fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		return colour.NewSwatch(trimmed, hsl, alpha), nil
	}

	if _, err := colour.ParseHex(trimmed); err != nil {
		return colour.Swatch{}, err
	}
	return colour.SwatchFromHex(trimmed, trimmed, alpha), nil
}

func parseHSL(s string) (colour.HSL, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "hsla"), "hsl")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '(' || r == ')' || r == '%' || unicode.IsSpace(r)
	})
	if len(fields) != 3 {
		return colour.HSL{}, fmt.Errorf("expected hue, saturation and lightness, got %d values", len(fields))
	}

	var vals [3]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return colour.HSL{}, fmt.Errorf("%q is not a whole number", field)
		}
		vals[i] = v
	}
	if vals[1] < 0 || vals[1] > 100 || vals[2] < 0 || vals[2] > 100 {
		return colour.HSL{}, fmt.Errorf("saturation and lightness must be within [0,100]")
	}
	return colour.HSL{H: vals[0], S: vals[1], L: vals[2]}, nil
}
