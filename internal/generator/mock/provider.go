// Package mock provides an ImageGenerator test double.
package mock

import (
	"context"
	"sync"

	"github.com/Ketan-K17/wallpaper-app/internal/generator/generr"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
)

// pngStub is a minimal valid 1x1 PNG so downloads of mock artifacts still
// decode as images.
var pngStub = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// Provider satisfies models.ImageGenerator for testing and local development.
type Provider struct {
	Name_        string
	GenerateFunc func(ctx context.Context, prompt string) ([]byte, error)

	mu      sync.Mutex
	prompts []string
}

func (p *Provider) Name() string { return p.Name_ }

func (p *Provider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	p.mu.Lock()
	p.prompts = append(p.prompts, prompt)
	p.mu.Unlock()

	if p.GenerateFunc != nil {
		return p.GenerateFunc(ctx, prompt)
	}
	return pngStub, nil
}

// Prompts returns a copy of every prompt Generate received.
func (p *Provider) Prompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

// NewProvider returns a Provider that always succeeds with a stub PNG.
func NewProvider() *Provider {
	return &Provider{Name_: "mock"}
}

// NewFailingProvider returns a Provider that always returns the given error.
func NewFailingProvider(err error) *Provider {
	return &Provider{
		Name_: "mock-failing",
		GenerateFunc: func(_ context.Context, _ string) ([]byte, error) {
			return nil, err
		},
	}
}

// NewTimeoutProvider returns a Provider that blocks until its context is
// cancelled, then reports a timeout.
func NewTimeoutProvider() *Provider {
	return &Provider{
		Name_: "mock-timeout",
		GenerateFunc: func(ctx context.Context, _ string) ([]byte, error) {
			<-ctx.Done()
			return nil, generr.ErrGenerationTimeout
		},
	}
}

// Compile-time check that Provider implements ImageGenerator.
var _ models.ImageGenerator = (*Provider)(nil)
