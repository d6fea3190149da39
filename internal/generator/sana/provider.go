// Package sana implements the image generator against a self-hosted SANA
// Sprint server, which returns raw image bytes from a JSON prompt request.
package sana

import (
	"bytes"
	"context"
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

// Provider implements models.ImageGenerator against a SANA image server.
type Provider struct {
	cfg    config.SanaConfig
	client *http.Client
}

func NewProvider(cfg config.SanaConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

func (p *Provider) Name() string { return "sana" }

type generateRequest struct {
	Prompt string `json:"prompt"`
	Ratio  string `json:"ratio"`
}

func (p *Provider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	reqBody, err := json.Marshal(generateRequest{Prompt: prompt, Ratio: p.cfg.Ratio})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/generate", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/*")

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, generr.ErrGenerationTimeout
		}
		return nil, fmt.Errorf("%w: %v", generr.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", generr.ErrProviderUnavailable, resp.StatusCode, body)
	}
	if readErr != nil {
		return nil, fmt.Errorf("read response: %w", readErr)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty image body", generr.ErrInvalidResponse)
	}

	return body, nil
}

var _ models.ImageGenerator = (*Provider)(nil)
