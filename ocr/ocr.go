// Package ocr is the boundary to the document text extractor. The rest of
// the system treats it as a black box that turns image bytes into raw text.
package ocr

import (
	"context"
	"errors"
	"fmt"

	"nyaay-backend/config"
)

var (
	// ErrDisabled is returned when no extractor is configured.
	ErrDisabled = errors.New("ocr is not configured")
	// ErrEmptyText is returned when extraction yields no readable text.
	ErrEmptyText = errors.New("ocr produced empty or unreadable text")
)

// Extractor extracts plain text from an uploaded document image.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}

// NewExtractor creates an extractor from configuration.
func NewExtractor(ctx context.Context, cfg *config.OCRConfig) (Extractor, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiExtractor(ctx, cfg)
	case "disabled":
		return DisabledExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown ocr provider: %s", cfg.Provider)
	}
}

// DisabledExtractor rejects every extraction request. Used when the
// deployment has no OCR credentials; the upload endpoint reports the
// feature as unavailable.
type DisabledExtractor struct{}

func (DisabledExtractor) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	return "", ErrDisabled
}
