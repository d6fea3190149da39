package generator

import (
	"fmt"

	"github.com/Ketan-K17/wallpaper-app/internal/config"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/gemini"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/mock"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/openai"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/sana"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
)

// NewGenerator constructs the image provider selected by config. Called once
// at server startup.
func NewGenerator(cfg config.GeneratorConfig) (models.ImageGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewProvider(cfg.Gemini), nil
	case "openai":
		return openai.NewProvider(cfg.OpenAI), nil
	case "sana":
		return sana.NewProvider(cfg.Sana), nil
	case "mock":
		return mock.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown image provider %q: must be one of gemini, openai, sana, mock", cfg.Provider)
	}
}
