// Package cli provides the command-line interface for swatchbook.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatchbook/internal/config"
	"github.com/jmylchreest/swatchbook/internal/palette"
	"github.com/jmylchreest/swatchbook/internal/service"
	"github.com/jmylchreest/swatchbook/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	quiet      bool
	noColor    bool
	preview    bool
	configPath string
	serviceURL string
}

// app is the per-invocation state built before any subcommand runs.
type app struct {
	opts   globalOptions
	cfg    config.Config
	logger hclog.Logger

	good *color.Color
	warn *color.Color
	bad  *color.Color
}

// NewRootCmd builds the swatchbook command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
		good:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		bad:    color.New(color.FgRed, color.Bold),
	}

	rootCmd := &cobra.Command{
		Use:   "swatchbook",
		Short: "An interactive colour palette editor",
		Long: `Swatchbook edits colour palettes produced by a palette generation service.

Load a palette from the service, a JSON payload or a list of hex colours, then
rotate it around the colour wheel, edit single swatches, preview text
contrast and see which colours fit each role of a web page layout.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&a.opts.noColor, "no-color", false, "disable coloured output and swatch previews")
	rootCmd.PersistentFlags().BoolVar(&a.opts.preview, "preview", false, "force swatch previews even when not writing to a terminal")
	rootCmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.opts.serviceURL, "service-url", "", "palette service base URL (overrides config)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newShowCmd(a),
		newRotateCmd(a),
		newRolesCmd(a),
		newTriadCmd(a),
		newConvertCmd(a),
		newSuggestCmd(a),
		newHistoryCmd(a),
		newExportCmd(a),
		newEditCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger. Flags override config.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	if a.opts.serviceURL != "" {
		cfg.ServiceURL = a.opts.serviceURL
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --service-url: %w", err)
		}
	}
	if a.opts.noColor {
		cfg.NoColor = true
	}
	a.cfg = cfg

	level := cfg.Level()
	switch {
	case a.opts.verbose:
		level = hclog.Debug
	case a.opts.quiet:
		level = hclog.Error
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "swatchbook",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	if cfg.NoColor || !isTerminal(cmd.OutOrStdout()) {
		for _, c := range []*color.Color{a.good, a.warn, a.bad} {
			c.DisableColor()
		}
	}

	a.logger.Debug("configuration loaded", "service_url", cfg.ServiceURL, "timeout", cfg.Timeout)
	return nil
}

// showPreview reports whether ANSI swatch previews should be written to w.
func (a *app) showPreview(w io.Writer) bool {
	if a.cfg.NoColor {
		return false
	}
	return a.opts.preview || isTerminal(w)
}

func (a *app) newSession() *palette.Session {
	return palette.NewSession(a.logger, palette.WithAlpha(a.cfg.DefaultAlpha))
}

func (a *app) client(s *palette.Session) *service.Client {
	c := service.NewClient(a.cfg.ServiceURL, a.cfg.Timeout, a.logger)
	if s != nil {
		c = c.WithSession(s.ID())
	}
	return c
}

// status prints a progress line unless --quiet is set.
func (a *app) status(w io.Writer, format string, args ...any) {
	if a.opts.quiet {
		return
	}
	a.good.Fprintf(w, format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print build metadata as JSON")
	return cmd
}
