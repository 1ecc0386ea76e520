// Package security provides input validation for data swatchbook reads from
// outside the process.
package security

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// MaxPayloadBytes bounds palette payloads read from files and the network.
const MaxPayloadBytes int64 = 1 << 20

// ErrPayloadTooLarge is returned once a LimitedReader's budget is spent.
var ErrPayloadTooLarge = errors.New("payload size limit exceeded")

// ValidateServiceURL checks a palette service base URL. Only http and https
// are accepted, a host is required, and query strings and fragments are
// rejected since request paths are appended to the URL.
func ValidateServiceURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty service URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid service URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid service URL protocol (only http:// and https:// allowed): %q", urlStr)
	}

	if parsed.Host == "" {
		return fmt.Errorf("service URL must have a hostname")
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("service URL must not carry a query or fragment")
	}

	return nil
}

// LimitedReader wraps an io.Reader and fails once more than the allowed
// number of bytes has been read.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining < 0 {
		return 0, ErrPayloadTooLarge
	}
	// Read one byte past the budget so an exact-size payload is not rejected.
	if int64(len(p)) > l.Remaining+1 {
		p = p[:l.Remaining+1]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	if l.Remaining < 0 {
		return n, ErrPayloadTooLarge
	}
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadAllLimited reads r to the end, failing when it holds more than maxBytes.
func ReadAllLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(NewLimitedReader(r, maxBytes))
	if err != nil {
		return nil, err
	}
	return data, nil
}
