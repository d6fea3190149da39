// Package gemini implements the image generator against the Google Gemini
// generateContent API with image response modality.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/config"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/generr"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
)

// Provider implements models.ImageGenerator using the Gemini REST API.
type Provider struct {
	cfg    config.GeminiConfig
	client *http.Client
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		cfg: cfg,
		// Overall deadline comes from the caller's context; this is a safety
		// net against a hung TCP connection.
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

func (p *Provider) Name() string { return "gemini" }

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (p *Provider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	reqBody, err := json.Marshal(generateContentRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.cfg.BaseURL, p.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, generr.ErrGenerationTimeout
		}
		return nil, fmt.Errorf("%w: %v", generr.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", generr.ErrProviderUnavailable, resp.StatusCode, body)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", generr.ErrInvalidResponse, err)
	}

	// The model interleaves text and image parts; the first inline image wins.
	for _, cand := range parsed.Candidates {
		for _, pt := range cand.Content.Parts {
			if pt.InlineData == nil || pt.InlineData.Data == "" {
				continue
			}
			img, err := base64.StdEncoding.DecodeString(pt.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("%w: bad base64 image data: %v", generr.ErrInvalidResponse, err)
			}
			return img, nil
		}
	}

	return nil, fmt.Errorf("%w: no image part in response", generr.ErrInvalidResponse)
}

var _ models.ImageGenerator = (*Provider)(nil)
