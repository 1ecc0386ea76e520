package service

import (
	"fmt"
	"sort"
	"strings"
)

// PageType is a kind of site a palette is meant for.
type PageType string

// Known page types.
const (
	PageLanding   PageType = "landing"
	PageEcommerce PageType = "ecommerce"
	PagePortfolio PageType = "portfolio"
	PageDashboard PageType = "dashboard"
)

// Preset fills a request for a page type.
type Preset struct {
	Sentiment      string
	Style          string
	Recommendation string
}

var presets = map[PageType]Preset{
	PageLanding: {
		Sentiment:      "energia",
		Style:          "futurista",
		Recommendation: "Use vibrant, high-contrast colours to grab attention.",
	},
	PageEcommerce: {
		Sentiment:      "confianza",
		Style:          "minimalista",
		Recommendation: "Keep light, trustworthy tones to make buying easy.",
	},
	PagePortfolio: {
		Sentiment:      "creatividad",
		Style:          "retro",
		Recommendation: "Mix striking accents to make projects stand out.",
	},
	PageDashboard: {
		Sentiment:      "confianza",
		Style:          "minimalista",
		Recommendation: "Prioritise legibility and neutral backgrounds.",
	},
}

// PageTypes returns the known page types in sorted order.
func PageTypes() []PageType {
	out := make([]PageType, 0, len(presets))
	for pt := range presets {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LookupPreset returns the preset for a page type name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[PageType(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return Preset{}, fmt.Errorf("unknown page type %q", name)
	}
	return p, nil
}

// Apply sets the preset's sentiment and style on the request.
func (p Preset) Apply(req Request) Request {
	req.Sentiment = p.Sentiment
	style := p.Style
	req.Style = &style
	return req
}
