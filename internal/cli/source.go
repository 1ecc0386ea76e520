package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/internal/palette"
	"github.com/jmylchreest/swatchbook/internal/service"
)

// errNoSource is returned when a command needs a palette and none was given.
var errNoSource = errors.New("no palette source: use --input, --colours, or --sentiment/--idea/--page-type")

// sourceFlags selects where a palette comes from.
type sourceFlags struct {
	input   string
	colours []string

	sentiment string
	idea      string
	count     int
	seed      int
	style     string
	brand     string
	pageType  string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "read a palette result payload from a JSON file (- for stdin)")
	fl.StringSliceVarP(&f.colours, "colours", "c", nil, "build a palette from hex colours (comma separated)")
	f.registerRequest(cmd)
}

// registerRequest adds only the generation service flags.
func (f *sourceFlags) registerRequest(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.sentiment, "sentiment", "s", "", "sentiment to generate a palette for (e.g. calma, energia)")
	fl.StringVar(&f.idea, "idea", "", "idea or concept behind the palette")
	fl.IntVarP(&f.count, "count", "n", service.DefaultCount, "number of colours to generate")
	fl.IntVar(&f.seed, "seed", 0, "seed for reproducible generation")
	fl.StringVar(&f.style, "style", "", "visual style (minimalista, brutalista, retro, futurista)")
	fl.StringVar(&f.brand, "brand", "", "brand or logo hint")
	fl.StringVar(&f.pageType, "page-type", "", "page type preset (landing, ecommerce, portfolio, dashboard)")
}

func (f *sourceFlags) wantsService() bool {
	return f.sentiment != "" || f.idea != "" || f.pageType != ""
}

func (f *sourceFlags) given() bool {
	return f.input != "" || len(f.colours) > 0 || f.wantsService()
}

// request builds a service request, applying any page-type preset first.
// Explicit --sentiment and --style still win over the preset.
func (f *sourceFlags) request(cmd *cobra.Command) (service.Request, *service.Preset, error) {
	req := service.Request{Idea: f.idea, Count: f.count}

	var preset *service.Preset
	if f.pageType != "" {
		p, err := service.LookupPreset(f.pageType)
		if err != nil {
			return service.Request{}, nil, err
		}
		req = p.Apply(req)
		preset = &p
	}
	if f.sentiment != "" {
		req.Sentiment = f.sentiment
	}
	if f.style != "" {
		style := f.style
		req.Style = &style
	}
	if f.brand != "" {
		brand := f.brand
		req.Brand = &brand
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		req.Seed = &seed
	}
	return req, preset, nil
}

// loadedPalette is a session primed from a source, plus what produced it.
type loadedPalette struct {
	session *palette.Session
	result  *palette.Result
	preset  *service.Preset
}

// resolve fetches or reads the result payload named by the flags.
func (f *sourceFlags) resolve(ctx context.Context, cmd *cobra.Command, a *app, s *palette.Session) (*palette.Result, *service.Preset, error) {
	switch {
	case f.input != "":
		a.logger.Debug("reading palette payload", "path", f.input)
		r, err := service.LoadResult(f.input, cmd.InOrStdin())
		return r, nil, err

	case len(f.colours) > 0:
		r, err := palette.ResultFromHexes(f.colours, a.cfg.DefaultAlpha)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --colours: %w", err)
		}
		return r, nil, nil

	case f.wantsService():
		req, preset, err := f.request(cmd)
		if err != nil {
			return nil, nil, err
		}
		r, err := a.client(s).Generate(ctx, req)
		return r, preset, err
	}
	return nil, nil, errNoSource
}

// load builds a session from the flags. An empty palette is reported as
// palette.ErrEmptyPalette and leaves the returned session empty.
func (f *sourceFlags) load(cmd *cobra.Command, a *app) (*loadedPalette, error) {
	s := a.newSession()
	r, preset, err := f.resolve(cmd.Context(), cmd, a, s)
	if err != nil {
		return nil, err
	}
	lp := &loadedPalette{session: s, result: r, preset: preset}
	if err := s.ApplyResult(r); err != nil {
		return lp, err
	}
	return lp, nil
}
