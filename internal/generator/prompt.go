// Package generator holds the prompt builder and the provider factory for the
// image generation backends.
package generator

import (
	"fmt"

	"github.com/Ketan-K17/wallpaper-app/pkg/models"
)

// promptPreamble pins the model to the wallpaper task: 9:16 aspect ratio, no
// text in the image, parameters restricted to the two closed sets.
const promptPreamble = "You're an AI wallpaper generator, which generates wallpaper images based on the values of 2 parameters, and a description field.\n\n" +
	"The 2 parameters -\n\n" +
	"Genre - Nature | Infrastructure | Still life | Sports | Cars\n\n" +
	"Art style - Comics | Anime | Realistic | Hazy | Pencil\n\n" +
	"You MUST follow these guidelines while creating the image. " +
	"1. Note that you must ALWAYS be in 9:16 aspect ratio, because it is to be used as a smartphone wallpaper. " +
	"2. Never include text in your image." +
	"Here is the image you need to generate -\n\n"

// BuildPrompt interpolates the validated request into the fixed template.
// Genre defaults to "Any" and art style to "Realistic" when unset.
func BuildPrompt(req models.GenerationRequest) string {
	genre := "Any"
	if req.Genre != "" {
		genre = string(req.Genre)
	}
	artStyle := "Realistic"
	if req.ArtStyle != "" {
		artStyle = string(req.ArtStyle)
	}

	return promptPreamble + fmt.Sprintf("Genre - %s\nArt style - %s\nDescription - %s",
		genre, artStyle, req.Description)
}
