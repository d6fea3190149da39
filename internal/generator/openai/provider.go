// Package openai implements the image generator using the OpenAI images API.
package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/Ketan-K17/wallpaper-app/internal/config"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/generr"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	openai "github.com/sashabaranov/go-openai"
)

// Provider implements models.ImageGenerator using DALL-E via go-openai.
type Provider struct {
	cfg    config.OpenAIConfig
	client *openai.Client
}

func NewProvider(cfg config.OpenAIConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: openai.NewClient(cfg.APIKey),
	}
}

func (p *Provider) Name() string { return "openai" }

func (p *Provider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt: prompt,
		Model:  p.cfg.Model,
		N:      1,
		// Closest DALL-E size to the 9:16 wallpaper ratio.
		Size:           openai.CreateImageSize1024x1792,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, generr.ErrGenerationTimeout
		}
		return nil, fmt.Errorf("%w: %v", generr.ErrProviderUnavailable, err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("%w: no image in response", generr.ErrInvalidResponse)
	}

	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64 image data: %v", generr.ErrInvalidResponse, err)
	}
	return img, nil
}

var _ models.ImageGenerator = (*Provider)(nil)
