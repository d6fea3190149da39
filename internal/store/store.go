// Package store archives terminal generation jobs in Postgres. The in-memory
// registry owns live jobs; the archive only keeps durable history so the
// recent-wallpapers view survives restarts.
package store

import (
	"context"
	"errors"

	"github.com/Ketan-K17/wallpaper-app/pkg/models"
)

var ErrNotFound = errors.New("resource not found")

// Store is the archive interface. All database operations go through here.
type Store interface {
	Ping(ctx context.Context) error

	// RecordTerminal inserts a completed or failed job. Recording the same id
	// twice is a no-op.
	RecordTerminal(ctx context.Context, job *models.GenerationJob) error

	// ListCompleted returns completed jobs, most recently completed first.
	ListCompleted(ctx context.Context, limit int) ([]*models.GenerationJob, error)
}
