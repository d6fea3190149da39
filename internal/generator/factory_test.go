package generator

import (
	"testing"

	"github.com/Ketan-K17/wallpaper-app/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
	}{
		{provider: "gemini", wantName: "gemini"},
		{provider: "openai", wantName: "openai"},
		{provider: "sana", wantName: "sana"},
		{provider: "mock", wantName: "mock"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			g, err := NewGenerator(config.GeneratorConfig{
				Provider: tt.provider,
				Gemini:   config.GeminiConfig{APIKey: "k", Model: "m", BaseURL: "https://example.com"},
				OpenAI:   config.OpenAIConfig{APIKey: "k", Model: "dall-e-3"},
				Sana:     config.SanaConfig{BaseURL: "http://localhost:8080", Ratio: "9:16"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, g.Name())
		})
	}
}

func TestNewGenerator_Unknown(t *testing.T) {
	_, err := NewGenerator(config.GeneratorConfig{Provider: "stable-diffusion"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown image provider")
}
