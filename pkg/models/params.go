package models

import "fmt"

// Genre and ArtStyle are closed sets. Unknown values are rejected at the API
// boundary instead of being passed through to the prompt.
type Genre string

type ArtStyle string

const (
	GenreNature         Genre = "Nature"
	GenreInfrastructure Genre = "Infrastructure"
	GenreStillLife      Genre = "Still life"
	GenreSports         Genre = "Sports"
	GenreCars           Genre = "Cars"
)

const (
	ArtStyleComics    ArtStyle = "Comics"
	ArtStyleAnime     ArtStyle = "Anime"
	ArtStyleRealistic ArtStyle = "Realistic"
	ArtStyleHazy      ArtStyle = "Hazy"
	ArtStylePencil    ArtStyle = "Pencil"
)

var genres = map[Genre]bool{
	GenreNature:         true,
	GenreInfrastructure: true,
	GenreStillLife:      true,
	GenreSports:         true,
	GenreCars:           true,
}

var artStyles = map[ArtStyle]bool{
	ArtStyleComics:    true,
	ArtStyleAnime:     true,
	ArtStyleRealistic: true,
	ArtStyleHazy:      true,
	ArtStylePencil:    true,
}

// ParseGenre validates a genre string. The empty string is a valid "unset"
// genre and parses to "".
func ParseGenre(s string) (Genre, error) {
	if s == "" {
		return "", nil
	}
	g := Genre(s)
	if !genres[g] {
		return "", fmt.Errorf("unknown genre %q: must be one of Nature, Infrastructure, Still life, Sports, Cars", s)
	}
	return g, nil
}

// ParseArtStyle validates an art style string. The empty string is a valid
// "unset" style and parses to "".
func ParseArtStyle(s string) (ArtStyle, error) {
	if s == "" {
		return "", nil
	}
	a := ArtStyle(s)
	if !artStyles[a] {
		return "", fmt.Errorf("unknown art style %q: must be one of Comics, Anime, Realistic, Hazy, Pencil", s)
	}
	return a, nil
}
