package generator

import "github.com/Ketan-K17/wallpaper-app/internal/generator/generr"

var (
	ErrProviderUnavailable = generr.ErrProviderUnavailable
	ErrGenerationTimeout   = generr.ErrGenerationTimeout
	ErrInvalidResponse     = generr.ErrInvalidResponse
)
