// Package models contains shared data models used across the wallpaper backend.
package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	return status == JobStatusCompleted || status == JobStatusFailed
}

// GenerationRequest is the validated input to a wallpaper generation.
type GenerationRequest struct {
	Description string   `json:"description"`
	Genre       Genre    `json:"genre,omitempty"`
	ArtStyle    ArtStyle `json:"art_style,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
}

// GenerationJob tracks one generation request through its lifecycle.
// The API returns a generation_id on POST /generate; the client polls
// GET /status/{generation_id} until status is completed or failed.
type GenerationJob struct {
	ID           uuid.UUID         `db:"generation_id" json:"generation_id"`
	Status       string            `db:"status"        json:"status"`
	Progress     int               `db:"progress"      json:"progress"`
	Request      GenerationRequest `db:"-"             json:"request"`
	ImagePath    string            `db:"image_url"     json:"image_path,omitempty"`
	ErrorMessage string            `db:"error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time         `db:"created_at"    json:"created_at"`
	CompletedAt  *time.Time        `db:"completed_at"  json:"completed_at,omitempty"`
}
