package palette

import (
	"errors"
	"testing"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

func TestExportTokens(t *testing.T) {
	swatches := []colour.Swatch{
		colour.SwatchFromHex("a", "#1F66AD", 1),
		colour.SwatchFromHex("b", "#AD661F", 1),
	}

	tests := []struct {
		format TokenFormat
		want   string
	}{
		{
			format: TokensCSS,
			want:   ":root {\n  --palette-1: #1F66AD;\n  --palette-2: #AD661F;\n}",
		},
		{
			format: TokensTailwind,
			want: `{
  "theme": {
    "extend": {
      "colors": {
        "palette-1": "#1F66AD",
        "palette-2": "#AD661F"
      }
    }
  }
}`,
		},
		{
			format: TokensFigma,
			want: `{
  "colors": {
    "palette-1": {
      "type": "color",
      "value": "#1F66AD"
    },
    "palette-2": {
      "type": "color",
      "value": "#AD661F"
    }
  }
}`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := ExportTokens(swatches, tt.format)
			if err != nil {
				t.Fatalf("ExportTokens() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExportTokens() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestParseTokenFormat(t *testing.T) {
	if f, err := ParseTokenFormat(" Tailwind "); err != nil || f != TokensTailwind {
		t.Errorf("ParseTokenFormat(Tailwind) = %q, %v", f, err)
	}
	if _, err := ParseTokenFormat("scss"); err == nil {
		t.Error("ParseTokenFormat(scss) succeeded")
	}
}

func TestSessionExportReflectsEdits(t *testing.T) {
	s := NewSession(nil)
	if _, err := s.Export(TokensCSS); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Export() on empty session error = %v", err)
	}

	s = newTestSession(t, record("Color 1", 210, 70, 40))
	if err := s.SetHex("#3366CC"); err != nil {
		t.Fatalf("SetHex() error = %v", err)
	}
	got, err := s.Export(TokensCSS)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got != ":root {\n  --palette-1: #3366CC;\n}" {
		t.Errorf("Export() = %q", got)
	}
}
