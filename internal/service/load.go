package service

import (
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/swatchbook/internal/palette"
	"github.com/jmylchreest/swatchbook/internal/security"
)

// LoadResult reads a result payload from path. A path of "-" reads stdin.
func LoadResult(path string, stdin io.Reader) (*palette.Result, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read palette payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := security.ReadAllLimited(r, security.MaxPayloadBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette payload: %w", err)
	}
	return palette.DecodeResult(data)
}
