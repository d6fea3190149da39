package models

import "context"

// ImageGenerator is the boundary around the actual image-generating service.
// Callers hold this interface, never a concrete backend.
type ImageGenerator interface {
	// Generate renders the prompt into raw image bytes (PNG or JPEG).
	Generate(ctx context.Context, prompt string) ([]byte, error)
	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
}
