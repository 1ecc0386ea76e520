package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/internal/colour"
	"github.com/jmylchreest/swatchbook/internal/palette"
)

const emptyPaletteMessage = "Nothing to show: the palette is empty."

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case formatText, formatJSON:
		return outputFormat(s), nil
	}
	return "", fmt.Errorf("invalid --format %q (want text or json)", s)
}

func newShowCmd(a *app) *cobra.Command {
	var (
		src      sourceFlags
		rotateTo string
		selected int
		format   string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Load a palette and show its colours, roles and contrast",
		Long: `Load a palette and print every colour with its formats and recommended
text colour, the palette contrast summary, the role assignment and the triad
of the selected colour.

Examples:
  swatchbook show --sentiment calma --idea spa
  swatchbook show --colours "#1E293B,#F59E0B,#6366F1"
  swatchbook show --input result.json --rotate-to "#FF8000"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			lp, err := src.load(cmd, a)
			if err != nil {
				return handleEmpty(cmd.OutOrStdout(), err)
			}
			if selected > 0 {
				if err := lp.session.Select(selected - 1); err != nil {
					return fmt.Errorf("invalid --select %d: %w", selected, err)
				}
			}
			if rotateTo != "" {
				if err := lp.session.RotateTo(rotateTo); err != nil {
					return fmt.Errorf("invalid --rotate-to: %w", err)
				}
			}
			return a.report(cmd.OutOrStdout(), lp, f)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&rotateTo, "rotate-to", "", "rotate the whole palette so the first colour takes this colour's hue")
	cmd.Flags().IntVar(&selected, "select", 0, "select colour N (1-based) before showing")
	cmd.Flags().StringVarP(&format, "format", "f", string(formatText), "output format (text, json)")
	return cmd
}

func newRotateCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "rotate HEX",
		Short: "Rotate a palette so its base colour takes the hue of HEX",
		Long: `Rotate every colour of a palette by the same hue offset. The offset is the
difference between the hue of HEX and the hue of the palette's first colour.
Saturation and lightness of each colour are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			if _, err := colour.ParseHex(args[0]); err != nil {
				return err
			}
			lp, err := src.load(cmd, a)
			if err != nil {
				return handleEmpty(cmd.OutOrStdout(), err)
			}
			from := lp.session.BaseHue()
			if err := lp.session.RotateTo(args[0]); err != nil {
				return err
			}
			a.logger.Debug("rotated palette", "from", from, "to", lp.session.BaseHue())
			if f == formatJSON {
				return writeJSON(cmd.OutOrStdout(), newPaletteReport(lp.session, lp.result))
			}
			renderPalette(cmd.OutOrStdout(), lp.session.Bundles(), a.showPreview(cmd.OutOrStdout()))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", string(formatText), "output format (text, json)")
	return cmd
}

func newRolesCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		layout bool
	)

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Show which palette colour fills each UI role",
		Long: `Sort the palette by lightness and map it onto the roles of a web page:
background, secondary background, heading, nav, button, button hover and
footer. With --layout, also show the colour and text colour of each page region.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lp, err := src.load(cmd, a)
			if err != nil {
				return handleEmpty(cmd.OutOrStdout(), err)
			}
			assignment, ok := lp.session.Roles()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), emptyPaletteMessage)
				return nil
			}
			out := cmd.OutOrStdout()
			preview := a.showPreview(out)
			renderRoles(out, assignment, preview)
			if layout {
				fmt.Fprintln(out)
				renderLayout(out, palette.Layout(assignment), preview)
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVarP(&layout, "layout", "l", false, "also show the page layout regions")
	return cmd
}

func newTriadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "triad HEX",
		Short: "Show the triad of a colour",
		Long: `Show a colour with the two colours 120 and 240 degrees around the colour
wheel from it, at the same saturation and lightness.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderTriad(out, colour.TriadHex(rgb.Hex()), a.showPreview(out))
			renderHarmonies(out, colour.Harmonies(colour.RGBToHSL(rgb).H))
			return nil
		},
	}
}

// report writes the full palette view.
func (a *app) report(w io.Writer, lp *loadedPalette, f outputFormat) error {
	s := lp.session
	if f == formatJSON {
		return writeJSON(w, newPaletteReport(s, lp.result))
	}

	preview := a.showPreview(w)
	if r := lp.result; r != nil && r.Profile != "" {
		fmt.Fprintf(w, "Profile: %s\n", r.Profile)
	}
	if lp.preset != nil {
		fmt.Fprintf(w, "Recommendation: %s\n", lp.preset.Recommendation)
	}
	renderPalette(w, s.Bundles(), preview)
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Contrast().String())

	if assignment, ok := s.Roles(); ok {
		fmt.Fprintln(w)
		renderRoles(w, assignment, preview)
	}
	fmt.Fprintln(w)
	renderTriad(w, s.Triad(), preview)
	renderHarmonies(w, s.Harmonies())

	if r := lp.result; r != nil {
		for _, note := range r.AINotes {
			fmt.Fprintf(w, "Note: %s\n", note)
		}
		for _, sug := range r.Suggestions {
			fmt.Fprintf(w, "Suggestion: %s\n", sug)
		}
	}
	return nil
}

// handleEmpty turns an empty palette into a neutral message.
func handleEmpty(w io.Writer, err error) error {
	if errors.Is(err, palette.ErrEmptyPalette) {
		fmt.Fprintln(w, emptyPaletteMessage)
		return nil
	}
	return err
}
