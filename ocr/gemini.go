package ocr

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"nyaay-backend/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const transcribePrompt = "Transcribe all text in this document image exactly as written, " +
	"top to bottom, left to right. Output plain text only, one line per printed line. " +
	"Do not describe the image, do not add commentary."

// GeminiExtractor transcribes document images through the Gemini API.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates a new Gemini-backed extractor
func NewGeminiExtractor(ctx context.Context, cfg *config.OCRConfig) (*GeminiExtractor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ocr.api_key (or GEMINI_API_KEY) is required for the gemini provider")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  cfg.Model,
	}, nil
}

// ExtractText transcribes the uploaded image and returns cleaned text with
// blank lines removed.
func (e *GeminiExtractor) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	format := imageFormat(filename)
	if format == "" {
		return "", fmt.Errorf("unsupported file format: %s", filepath.Ext(filename))
	}

	model := e.client.GenerativeModel(e.model)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, data),
		genai.Text(transcribePrompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini transcription failed: %w", err)
	}

	raw := collectText(resp)
	text := cleanText(raw)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// Close releases the underlying API client.
func (e *GeminiExtractor) Close() error {
	return e.client.Close()
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// cleanText drops blank lines and trims the rest.
func cleanText(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// imageFormat maps a filename extension to the format label the API
// expects, or "" when the format is not supported.
func imageFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".webp":
		return "webp"
	default:
		return ""
	}
}
