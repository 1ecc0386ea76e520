package palette

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

// DefaultBaseHue anchors rotations before any palette has been loaded.
const DefaultBaseHue = 210

// defaultControlLightness seeds the lightness control before a palette is loaded.
const defaultControlLightness = 50

// Controls mirrors the editor inputs: the chosen hex, the hue and lightness
// sliders, and the alpha slider. They follow the selected colour after every
// change.
type Controls struct {
	Hex       string  `json:"hex"`
	Hue       int     `json:"hue"`
	Lightness int     `json:"lightness"`
	Alpha     float64 `json:"alpha"`
}

// Option configures a Session.
type Option func(*Session)

// WithBaseHue sets the initial rotation anchor.
func WithBaseHue(hue int) Option {
	return func(s *Session) {
		s.baseHue = colour.NormaliseHue(hue)
	}
}

// WithAlpha sets the initial alpha control.
func WithAlpha(alpha float64) Option {
	return func(s *Session) {
		s.controls.Alpha = colour.ClampAlpha(alpha)
	}
}

// Session is one palette editing session. It owns the palette, the rotation
// anchor and the editor controls; all edits go through its methods.
type Session struct {
	id       string
	logger   hclog.Logger
	palette  *Collection
	baseHue  int
	controls Controls
	contrast Contrast
}

// NewSession creates a session with an empty palette.
func NewSession(logger hclog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	id := uuid.NewString()
	s := &Session{
		id:       id,
		logger:   logger.Named("session").With("session", id),
		palette:  NewCollection(),
		baseHue:  DefaultBaseHue,
		controls: Controls{Alpha: colour.DefaultAlpha},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.controls.Hue = s.baseHue
	s.controls.Lightness = defaultControlLightness
	s.controls.Hex = colour.HSLToHex(s.baseHue, colour.PinnedSaturation, defaultControlLightness)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns the current palette and selection.
func (s *Session) Snapshot() *Snapshot { return s.palette.Snapshot() }

// Controls returns the current editor inputs.
func (s *Session) Controls() Controls { return s.controls }

// BaseHue returns the hue rotations are measured from.
func (s *Session) BaseHue() int { return s.baseHue }

// Contrast returns the contrast summary for the current palette.
func (s *Session) Contrast() Contrast { return s.contrast }

// Current returns the selected colour.
func (s *Session) Current() (colour.Swatch, error) { return s.palette.Current() }

// ApplyResult replaces the palette with a generation result. A result with an
// error or without colours leaves the session untouched.
func (s *Session) ApplyResult(r *Result) error {
	if r != nil && r.Error != "" {
		return fmt.Errorf("palette service error: %s", r.Error)
	}

	swatches, err := r.Swatches()
	if err != nil {
		s.logger.Warn("ignoring result without colours")
		return err
	}
	if err := s.palette.Replace(swatches); err != nil {
		return err
	}

	s.baseHue = swatches[0].Hue
	if r.Contrast != nil {
		s.contrast = *r.Contrast
	} else {
		s.contrast = MeasureContrast(swatches)
	}

	s.logger.Debug("palette replaced", "colours", len(swatches), "base_hue", s.baseHue)
	s.sync()
	return nil
}

// Select makes the colour at index the one being edited.
func (s *Session) Select(index int) error {
	if err := s.palette.Select(index); err != nil {
		s.logger.Warn("selection rejected", "index", index, "error", err)
		return err
	}
	s.logger.Debug("selected", "index", index)
	s.edited()
	return nil
}

// RotateTo rotates every hue so that the palette pivots to the hue of hex.
func (s *Session) RotateTo(hex string) error {
	if _, err := colour.ParseHex(hex); err != nil {
		return err
	}
	return s.RotateToHue(colour.HexToHSL(hex).H)
}

// RotateToHue shifts every hue by the difference between hue and the base hue,
// then makes hue the new base so later rotations start from here.
func (s *Session) RotateToHue(hue int) error {
	if s.palette.Len() == 0 {
		return ErrEmptyPalette
	}

	delta := hue - s.baseHue
	err := s.palette.SetAll(func(swatches []colour.Swatch) []colour.Swatch {
		return colour.RotatePalette(swatches, delta)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("rotated palette", "from", s.baseHue, "to", hue, "delta", delta)
	s.baseHue = colour.NormaliseHue(hue)
	s.edited()
	return nil
}

// SetHueLightness applies the hue and lightness sliders to the selected colour.
// Slider edits always pin saturation.
func (s *Session) SetHueLightness(hue, lightness int) error {
	hex := colour.HSLToHex(hue, colour.PinnedSaturation, lightness)
	return s.editSelected(func(cur colour.Swatch) colour.Swatch {
		return colour.SwatchFromHex(cur.Name, hex, s.controls.Alpha)
	}, "hue_lightness")
}

// SetHue moves the hue slider, keeping the lightness slider.
func (s *Session) SetHue(hue int) error {
	return s.SetHueLightness(hue, s.controls.Lightness)
}

// SetLightness moves the lightness slider, keeping the hue slider.
func (s *Session) SetLightness(lightness int) error {
	return s.SetHueLightness(s.controls.Hue, lightness)
}

// SetHueFromWheel picks a hue from a point on the hue wheel relative to its
// centre and applies it like the hue slider.
func (s *Session) SetHueFromWheel(x, y float64) error {
	return s.SetHue(colour.WheelHue(x, y))
}

// SetAlpha changes the selected colour's alpha, keeping its colour.
func (s *Session) SetAlpha(alpha float64) error {
	return s.editSelected(func(cur colour.Swatch) colour.Swatch {
		return cur.WithAlpha(alpha)
	}, "alpha")
}

// SetHex replaces the selected colour with hex, keeping its alpha.
func (s *Session) SetHex(hex string) error {
	if _, err := colour.ParseHex(hex); err != nil {
		return err
	}
	return s.editSelected(func(cur colour.Swatch) colour.Swatch {
		return colour.SwatchFromHex(cur.Name, hex, s.controls.Alpha)
	}, "hex")
}

// Append adds a colour built from the chosen hex and alpha and selects it.
func (s *Session) Append() int {
	name := fmt.Sprintf("Color %d", s.palette.Len()+1)
	idx := s.palette.Append(colour.SwatchFromHex(name, s.controls.Hex, s.controls.Alpha))
	s.logger.Debug("appended colour", "index", idx, "hex", colour.NormaliseHex(s.controls.Hex))
	s.edited()
	return idx
}

// Delete removes the selected colour. The last colour is never removed.
func (s *Session) Delete() error {
	idx := s.palette.Selected()
	if err := s.palette.Remove(idx); err != nil {
		if errors.Is(err, ErrLastColour) {
			s.logger.Warn("refusing to delete the last colour")
		}
		return err
	}
	s.logger.Debug("deleted colour", "index", idx)
	s.edited()
	return nil
}

// Roles maps the current palette onto UI roles.
func (s *Session) Roles() (colour.Assignment, bool) {
	return colour.AssignRoles(s.palette.Snapshot().swatches)
}

// Triad returns the triad preview for the chosen colour. It is not added to the palette.
func (s *Session) Triad() [3]string {
	return colour.TriadHex(s.controls.Hex)
}

// Harmonies returns harmony schemes around the base hue.
func (s *Session) Harmonies() []colour.Harmony {
	return colour.Harmonies(s.baseHue)
}

// Bundles returns the display bundle of every colour.
func (s *Session) Bundles() []Display {
	return Bundles(s.palette.Snapshot())
}

// Export renders the current palette, edits included, as design tokens.
func (s *Session) Export(format TokenFormat) (string, error) {
	snap := s.palette.Snapshot()
	if snap.Len() == 0 {
		return "", ErrEmptyPalette
	}
	return ExportTokens(snap.swatches, format)
}

func (s *Session) editSelected(fn func(colour.Swatch) colour.Swatch, op string) error {
	cur, err := s.palette.Current()
	if err != nil {
		return err
	}
	idx := s.palette.Selected()
	next := fn(cur)
	if err := s.palette.Set(idx, next); err != nil {
		return err
	}
	s.logger.Debug("edited colour", "op", op, "index", idx, "hex", next.Hex(), "hue", next.Hue)
	s.edited()
	return nil
}

// edited marks the palette as locally modified and resyncs the controls.
func (s *Session) edited() {
	s.contrast = CustomContrast()
	s.sync()
}

// sync points the controls at the selected colour.
func (s *Session) sync() {
	cur, err := s.palette.Current()
	if err != nil {
		return
	}
	s.controls = Controls{
		Hex:       cur.Hex(),
		Hue:       cur.Hue,
		Lightness: cur.Lightness,
		Alpha:     cur.Alpha,
	}
}
