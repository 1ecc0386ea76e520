package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

// TokenFormat selects the shape of exported design tokens.
type TokenFormat string

// Supported token formats.
const (
	TokensCSS      TokenFormat = "css"
	TokensTailwind TokenFormat = "tailwind"
	TokensFigma    TokenFormat = "figma"
)

// TokenFormats returns every supported format.
func TokenFormats() []TokenFormat {
	return []TokenFormat{TokensCSS, TokensTailwind, TokensFigma}
}

// ParseTokenFormat resolves a case-insensitive format name.
func ParseTokenFormat(s string) (TokenFormat, error) {
	f := TokenFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TokenFormats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported token format %q (want css, tailwind or figma)", s)
}

// Token is one named design token.
type Token struct {
	Name  string
	Value string
}

// DesignTokens names each swatch "palette-N" in palette order.
func DesignTokens(swatches []colour.Swatch) []Token {
	tokens := make([]Token, len(swatches))
	for i, s := range swatches {
		tokens[i] = Token{Name: fmt.Sprintf("palette-%d", i+1), Value: s.Hex()}
	}
	return tokens
}

// ExportTokens renders the swatches as design tokens in the given format.
func ExportTokens(swatches []colour.Swatch, format TokenFormat) (string, error) {
	tokens := DesignTokens(swatches)

	switch format {
	case TokensCSS:
		var b strings.Builder
		b.WriteString(":root {\n")
		for _, t := range tokens {
			fmt.Fprintf(&b, "  --%s: %s;\n", t.Name, t.Value)
		}
		b.WriteString("}")
		return b.String(), nil

	case TokensTailwind:
		colors := orderedMap(tokens, func(t Token) any { return t.Value })
		return marshalTokens(map[string]any{"theme": map[string]any{"extend": map[string]any{"colors": colors}}})

	case TokensFigma:
		colors := orderedMap(tokens, func(t Token) any {
			return map[string]string{"value": t.Value, "type": "color"}
		})
		return marshalTokens(map[string]any{"colors": colors})
	}
	return "", fmt.Errorf("unsupported token format %q", format)
}

// tokenMap is a JSON object that keeps token order.
type tokenMap struct {
	keys   []string
	values map[string]any
}

func orderedMap(tokens []Token, value func(Token) any) tokenMap {
	m := tokenMap{values: make(map[string]any, len(tokens))}
	for _, t := range tokens {
		m.keys = append(m.keys, t.Name)
		m.values[t.Name] = value(t)
	}
	return m
}

func (m tokenMap) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func marshalTokens(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tokens: %w", err)
	}
	return string(data), nil
}
