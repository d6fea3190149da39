package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Genre
		wantErr bool
	}{
		{name: "valid", input: "Nature", want: GenreNature},
		{name: "valid with space", input: "Still life", want: GenreStillLife},
		{name: "unset", input: "", want: ""},
		{name: "unknown", input: "Abstract", wantErr: true},
		{name: "wrong case", input: "nature", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenre(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown genre")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArtStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ArtStyle
		wantErr bool
	}{
		{name: "valid", input: "Realistic", want: ArtStyleRealistic},
		{name: "unset", input: "", want: ""},
		{name: "unknown", input: "Watercolor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArtStyle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(JobStatusPending))
	assert.False(t, IsTerminal(JobStatusProcessing))
	assert.True(t, IsTerminal(JobStatusCompleted))
	assert.True(t, IsTerminal(JobStatusFailed))
}
