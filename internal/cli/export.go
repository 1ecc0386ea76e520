package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/internal/palette"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		src      sourceFlags
		format   string
		output   string
		rotateTo string
		remote   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a palette as design tokens",
		Long: `Export a palette as design tokens named palette-1, palette-2, ...

Formats:
  css       CSS custom properties on :root
  tailwind  a Tailwind theme.extend.colors object
  figma     a Figma tokens object

With --remote the palette service renders the tokens for a fresh generation
request instead; local edits are not applied in that mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := palette.ParseTokenFormat(format)
			if err != nil {
				return err
			}
			var content string
			if remote {
				content, err = exportRemote(cmd, a, &src, tf, rotateTo)
			} else {
				content, err = exportLocal(cmd, a, &src, tf, rotateTo)
			}
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			}
			if err := os.WriteFile(output, []byte(content+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write tokens: %w", err)
			}
			a.status(cmd.ErrOrStderr(), "Wrote %s tokens to %s", tf, output)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", string(palette.TokensCSS), "token format (css, tailwind, figma)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write tokens to a file instead of stdout")
	cmd.Flags().StringVar(&rotateTo, "rotate-to", "", "rotate the palette to this colour's hue before exporting")
	cmd.Flags().BoolVar(&remote, "remote", false, "let the palette service render the tokens (needs --sentiment, --idea or --page-type)")
	return cmd
}

func exportLocal(cmd *cobra.Command, a *app, src *sourceFlags, tf palette.TokenFormat, rotateTo string) (string, error) {
	lp, err := src.load(cmd, a)
	if err != nil {
		return "", err
	}
	if rotateTo != "" {
		if err := lp.session.RotateTo(rotateTo); err != nil {
			return "", fmt.Errorf("invalid --rotate-to: %w", err)
		}
	}
	return lp.session.Export(tf)
}

func exportRemote(cmd *cobra.Command, a *app, src *sourceFlags, tf palette.TokenFormat, rotateTo string) (string, error) {
	if !src.wantsService() || src.input != "" || len(src.colours) > 0 {
		return "", errors.New("--remote needs a service request (--sentiment, --idea or --page-type) and no --input or --colours")
	}
	if rotateTo != "" {
		return "", errors.New("--rotate-to cannot be combined with --remote")
	}
	req, _, err := src.request(cmd)
	if err != nil {
		return "", err
	}
	return a.client(nil).Export(cmd.Context(), req, tf)
}
