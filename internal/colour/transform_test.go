package colour

import "testing"

func TestRotateHue(t *testing.T) {
	tests := []struct {
		hue, delta, want int
	}{
		{hue: 210, delta: -180, want: 30},
		{hue: 10, delta: -20, want: 350},
		{hue: 350, delta: 20, want: 10},
		{hue: 0, delta: 0, want: 0},
		{hue: 359, delta: 1, want: 0},
		{hue: 120, delta: 720, want: 120},
	}

	for _, tt := range tests {
		if got := RotateHue(tt.hue, tt.delta); got != tt.want {
			t.Errorf("RotateHue(%d, %d) = %d, want %d", tt.hue, tt.delta, got, tt.want)
		}
	}
}

func TestRotatePaletteComposes(t *testing.T) {
	palette := []Swatch{
		NewSwatch("Color 1", HSL{H: 210, S: 70, L: 40}, 0.9),
		NewSwatch("Color 2", HSL{H: 0, S: 50, L: 60}, 0.8),
		NewSwatch("Color 3", HSL{H: 359, S: 20, L: 90}, 0.75),
	}

	deltas := [][2]int{{30, 45}, {-180, 90}, {359, 359}, {-10, -355}, {0, 0}}
	for _, d := range deltas {
		twice := RotatePalette(RotatePalette(palette, d[0]), d[1])
		once := RotatePalette(palette, (d[0]+d[1])%360)
		for i := range palette {
			if twice[i] != once[i] {
				t.Errorf("deltas %v: swatch %d twice=%+v once=%+v", d, i, twice[i], once[i])
			}
		}
	}
}

func TestRotatePaletteHoldsOtherChannels(t *testing.T) {
	palette := []Swatch{NewSwatch("Color 1", HSL{H: 210, S: 70, L: 40}, 0.5)}
	got := RotatePalette(palette, -180)[0]

	if got.Hue != 30 || got.Saturation != 70 || got.Lightness != 40 || got.Alpha != 0.5 {
		t.Fatalf("RotatePalette() = %+v", got)
	}
	want := Formats{
		Hex:  "#AD661F",
		RGB:  "rgb(173, 102, 31)",
		RGBA: "rgba(173, 102, 31, 0.50)",
		HSL:  "hsl(30, 70%, 40%)",
		HSLA: "hsla(30, 70%, 40%, 0.50)",
	}
	if got.Formats != want {
		t.Errorf("Formats = %+v, want %+v", got.Formats, want)
	}
	if palette[0].Hue != 210 {
		t.Error("RotatePalette modified its input")
	}
}

func TestTriad(t *testing.T) {
	for _, hue := range []int{0, 1, 119, 120, 180, 239, 240, 300, 359} {
		got := Triad(hue)
		if got[0] != hue {
			t.Errorf("Triad(%d)[0] = %d", hue, got[0])
		}
		if NormaliseHue(got[1]-hue) != 120 || NormaliseHue(got[2]-hue) != 240 {
			t.Errorf("Triad(%d) = %v, companions not at +120/+240", hue, got)
		}
		for _, h := range got {
			if h < 0 || h >= 360 {
				t.Errorf("Triad(%d) = %v, hue out of range", hue, got)
			}
		}
	}
}

func TestTriadHex(t *testing.T) {
	got := TriadHex("#ff0000")
	want := [3]string{"#FF0000", "#00FF00", "#0000FF"}
	if got != want {
		t.Errorf("TriadHex() = %v, want %v", got, want)
	}
}

func TestHarmonies(t *testing.T) {
	got := Harmonies(10)
	if len(got) != 3 {
		t.Fatalf("Harmonies() returned %d schemes, want 3", len(got))
	}

	want := map[string][]int{
		"complementary": {10, 190},
		"analogous":     {340, 10, 40},
		"triadic":       {10, 130, 250},
	}
	for _, h := range got {
		hues, ok := want[h.Name]
		if !ok {
			t.Errorf("unexpected harmony %q", h.Name)
			continue
		}
		if len(hues) != len(h.Hues) {
			t.Errorf("%s hues = %v, want %v", h.Name, h.Hues, hues)
			continue
		}
		for i := range hues {
			if hues[i] != h.Hues[i] {
				t.Errorf("%s hues = %v, want %v", h.Name, h.Hues, hues)
				break
			}
		}
	}
}

func TestWheelHue(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{name: "top", x: 0, y: -50, want: 0},
		{name: "right", x: 50, y: 0, want: 90},
		{name: "bottom", x: 0, y: 50, want: 180},
		{name: "left", x: -50, y: 0, want: 270},
		{name: "upper left near wrap", x: -1, y: -100, want: 359},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WheelHue(tt.x, tt.y); got != tt.want {
				t.Errorf("WheelHue(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{a: 10, b: 350, want: 20},
		{a: 0, b: 180, want: 180},
		{a: 90, b: 90, want: 0},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("HueDistance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSwatchConstructors(t *testing.T) {
	s := SwatchFromHex("Color 1", "#ff0001", 0.85)
	if s.Hue != 0 {
		t.Errorf("SwatchFromHex hue = %d, want wrapped 0", s.Hue)
	}
	if s.Formats.Hex != "#FF0001" {
		t.Errorf("SwatchFromHex hex = %s, want #FF0001", s.Formats.Hex)
	}
	if s.Formats.HSL != "hsl(0, 100%, 50%)" {
		t.Errorf("SwatchFromHex hsl = %s", s.Formats.HSL)
	}

	a := s.WithAlpha(0.3)
	if a.Formats.Hex != s.Formats.Hex || a.Formats.RGBA != "rgba(255, 0, 1, 0.30)" || a.Saturation != s.Saturation {
		t.Errorf("WithAlpha() = %+v", a)
	}
}
