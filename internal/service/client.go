// Package service talks to the palette generation service and loads result
// payloads from disk.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatchbook/internal/palette"
	httputil "github.com/jmylchreest/swatchbook/internal/util/http"
)

// Service endpoints, relative to the base URL.
const (
	PalettePath     = "/api/palette"
	SuggestionsPath = "/api/ai-palettes"
	HistoryPath     = "/api/presets"
	ExportPath      = "/api/export"
)

// SessionHeader carries the editing session ID on every request.
const SessionHeader = "X-Session-ID"

// DefaultCount is the number of colours requested when none is given.
const DefaultCount = 5

// Request is a palette generation request.
type Request struct {
	Sentiment string  `json:"sentiment"`
	Idea      string  `json:"idea"`
	Count     int     `json:"count"`
	Seed      *int    `json:"seed"`
	Style     *string `json:"style"`
	Brand     *string `json:"brand"`
}

// Normalised fills defaults and drops blank optional fields.
func (r Request) Normalised() Request {
	if r.Count <= 0 {
		r.Count = DefaultCount
	}
	r.Style = blankToNil(r.Style)
	r.Brand = blankToNil(r.Brand)
	return r
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// HistoryEntry is one previously generated palette stored by the service.
type HistoryEntry struct {
	CreatedAt time.Time        `json:"created_at"`
	Sentiment string           `json:"sentiment"`
	Idea      string           `json:"idea"`
	Style     string           `json:"style"`
	BrandHint string           `json:"brand_hint"`
	Palette   []palette.Record `json:"palette"`
}

// Client calls the palette service.
type Client struct {
	baseURL   string
	timeout   time.Duration
	sessionID string
	logger    hclog.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("service"),
	}
}

// WithSession returns a copy of the client that tags requests with sessionID.
func (c *Client) WithSession(sessionID string) *Client {
	cp := *c
	cp.sessionID = sessionID
	cp.logger = c.logger.With("session", sessionID)
	return &cp
}

// Generate requests a new palette.
func (c *Client) Generate(ctx context.Context, req Request) (*palette.Result, error) {
	data, err := c.post(ctx, PalettePath, req.Normalised())
	if err != nil {
		return nil, err
	}
	result, err := palette.DecodeResult(data)
	if err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, fmt.Errorf("palette service: %s", result.Error)
	}
	c.logger.Debug("generated palette", "profile", result.Profile, "colours", len(result.Palette))
	return result, nil
}

// Suggest requests AI palette variants.
func (c *Client) Suggest(ctx context.Context, req Request) (*palette.Suggestions, error) {
	data, err := c.post(ctx, SuggestionsPath, req.Normalised())
	if err != nil {
		return nil, err
	}
	s, err := palette.DecodeSuggestions(data)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("received suggestions", "variants", len(s.Palettes))
	return s, nil
}

// History lists the palettes the service has generated so far.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	url := c.baseURL + HistoryPath
	c.logger.Debug("fetching", "url", url)
	data, err := httputil.Fetch(ctx, url, c.options())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return entries, nil
}

// exportRequest is a generation request plus the token format to render.
type exportRequest struct {
	Request
	Format string `json:"format"`
}

// Export asks the service to generate a palette for req and render it as
// design tokens. The service regenerates from the request, so local edits are
// not reflected; use palette.ExportTokens for an edited palette.
func (c *Client) Export(ctx context.Context, req Request, format palette.TokenFormat) (string, error) {
	data, err := c.post(ctx, ExportPath, exportRequest{Request: req.Normalised(), Format: string(format)})
	if err != nil {
		return "", err
	}

	var resp struct {
		Format  string          `json:"format"`
		Content json.RawMessage `json:"content"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to decode export: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("palette service: %s", resp.Error)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("palette service returned no %s tokens", format)
	}

	var text string
	if json.Unmarshal(resp.Content, &text) == nil {
		return text, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, resp.Content, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format %s tokens: %w", format, err)
	}
	c.logger.Debug("exported tokens", "format", resp.Format)
	return out.String(), nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	url := c.baseURL + path
	c.logger.Debug("posting", "url", url)
	data, err := httputil.PostJSON(ctx, url, body, c.options())
	if err != nil {
		return nil, fmt.Errorf("palette service request to %s failed: %w", path, err)
	}
	return data, nil
}

func (c *Client) options() httputil.FetchOptions {
	opts := httputil.FetchOptions{Timeout: c.timeout}
	if c.sessionID != "" {
		opts.Headers = map[string]string{SessionHeader: c.sessionID}
	}
	return opts
}
