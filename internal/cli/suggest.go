package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSuggestCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Request AI palette variants from the palette service",
		Long: `Ask the palette service for alternative palettes for a sentiment and idea.
Each variant shows up to five of its colours. Variants are only displayed and
never replace a palette being edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			if !src.wantsService() {
				return errNoSource
			}
			req, preset, err := src.request(cmd)
			if err != nil {
				return err
			}

			suggestions, err := a.client(nil).Suggest(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			variants := suggestions.Variants()
			if f == formatJSON {
				return writeJSON(out, variants)
			}
			if preset != nil {
				fmt.Fprintf(out, "Recommendation: %s\n", preset.Recommendation)
			}
			renderVariants(out, variants, a.showPreview(out))
			return nil
		},
	}

	src.registerRequest(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", string(formatText), "output format (text, json)")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List palettes previously generated by the palette service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.client(nil).History(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No palettes generated yet.")
				return nil
			}
			// Newest last on the wire; show the newest first.
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			table := NewTable([]string{"Created", "Sentiment", "Idea", "Style", "Colours"})
			table.SetColumnMaxWidth(2, 30)
			for i := len(entries) - 1; i >= 0; i-- {
				e := entries[i]
				hexes := make([]string, len(e.Palette))
				for j, rec := range e.Palette {
					hexes[j] = rec.Swatch().Hex()
				}
				created := ""
				if !e.CreatedAt.IsZero() {
					created = e.CreatedAt.Local().Format("2006-01-02 15:04")
				}
				table.AddRow([]string{created, e.Sentiment, e.Idea, e.Style, strings.Join(hexes, " ")})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many palettes (0 for all)")
	return cmd
}
