// Package generr holds the generator error sentinels in a leaf package so
// provider subpackages can wrap them without importing the factory package.
package generr

import "errors"

var (
	ErrProviderUnavailable = errors.New("image provider unavailable")
	ErrGenerationTimeout   = errors.New("image generation timeout")
	ErrInvalidResponse     = errors.New("image provider returned invalid response")
)
