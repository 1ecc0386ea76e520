package colour

import (
	"math"
	"testing"
)

func TestBestTextColor(t *testing.T) {
	tests := []struct {
		hex  string
		want TextTone
	}{
		{hex: "#FFFFFF", want: TextDark},
		{hex: "#000000", want: TextLight},
		{hex: "#CCCCCC", want: TextDark},
		{hex: "#808080", want: TextLight},
		{hex: "#F59E0B", want: TextDark},  // 0.65
		{hex: "#FF8000", want: TextLight}, // 0.57
		{hex: "#1F66AD", want: TextLight},
	}

	for _, tt := range tests {
		if got := BestTextColor(tt.hex); got != tt.want {
			t.Errorf("BestTextColor(%s) = %s, want %s", tt.hex, got, tt.want)
		}
	}
}

func TestTextToneTokens(t *testing.T) {
	if TextDark.Hex() != "#0F172A" || TextLight.Hex() != "#F8FAFC" {
		t.Errorf("unexpected text tokens %s / %s", TextDark.Hex(), TextLight.Hex())
	}
	if TextDark.ChipHex() != "#FFFFFF" || TextLight.ChipHex() != "#111827" {
		t.Errorf("unexpected chip colours %s / %s", TextDark.ChipHex(), TextLight.ChipHex())
	}
}

func TestBestTextColorMonotonic(t *testing.T) {
	// Walking the grey ramp from black to white, once dark text is chosen it
	// must stay chosen.
	seenDark := false
	for v := 0; v < 256; v++ {
		rgb := RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
		tone := BestTextColor(rgb.Hex())
		if seenDark && tone == TextLight {
			t.Fatalf("grey %s chose light text after a darker grey chose dark text", rgb.Hex())
		}
		if tone == TextDark {
			seenDark = true
			if PerceivedLuminance(rgb) <= 0.6 {
				t.Fatalf("grey %s chose dark text at luminance %.4f", rgb.Hex(), PerceivedLuminance(rgb))
			}
		}
	}
	if !seenDark {
		t.Fatal("dark text never chosen on the grey ramp")
	}
}

func TestContrastRatio(t *testing.T) {
	black := RGB{}.Color()
	white := RGB{R: 255, G: 255, B: 255}.Color()

	if got := ContrastRatio(black, white); math.Abs(got-21) > 0.01 {
		t.Errorf("ContrastRatio(black, white) = %.3f, want 21", got)
	}
	if got := ContrastRatio(white, black); math.Abs(got-21) > 0.01 {
		t.Errorf("ContrastRatio(white, black) = %.3f, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %.3f, want 1", got)
	}
}

func TestMinContrast(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	grey := RGB{R: 128, G: 128, B: 128}

	tests := []struct {
		name    string
		colours []RGB
		want    float64
	}{
		{name: "empty", colours: nil, want: 0},
		{name: "single", colours: []RGB{black}, want: 0},
		{name: "black and white", colours: []RGB{black, white}, want: 21},
		{name: "duplicates", colours: []RGB{grey, white, grey}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinContrast(tt.colours); got != tt.want {
				t.Errorf("MinContrast() = %v, want %v", got, tt.want)
			}
		})
	}
}
