package store

import (
	"context"
	"fmt"

	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements the Store interface using pgx/v5.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) RecordTerminal(ctx context.Context, job *models.GenerationJob) error {
	if !models.IsTerminal(job.Status) {
		return fmt.Errorf("record non-terminal job %s (%s)", job.ID, job.Status)
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO generation_jobs
		   (generation_id, status, progress, description, genre, art_style, user_id,
		    image_url, error_message, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (generation_id) DO NOTHING`,
		job.ID, job.Status, job.Progress,
		job.Request.Description, nullable(string(job.Request.Genre)),
		nullable(string(job.Request.ArtStyle)), nullable(job.Request.UserID),
		nullable(job.ImagePath), nullable(job.ErrorMessage),
		job.CreatedAt, job.CompletedAt)
	if err != nil {
		return fmt.Errorf("record terminal job: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListCompleted(ctx context.Context, limit int) ([]*models.GenerationJob, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT generation_id, status, progress, description, genre, art_style, user_id,
		        image_url, error_message, created_at, completed_at
		 FROM generation_jobs
		 WHERE status = 'completed'
		 ORDER BY completed_at DESC NULLS LAST
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list completed jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.GenerationJob
	for rows.Next() {
		var j models.GenerationJob
		var genre, artStyle, userID, imgURL, errMsg *string
		if err := rows.Scan(&j.ID, &j.Status, &j.Progress, &j.Request.Description,
			&genre, &artStyle, &userID, &imgURL, &errMsg,
			&j.CreatedAt, &j.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		if genre != nil {
			j.Request.Genre = models.Genre(*genre)
		}
		if artStyle != nil {
			j.Request.ArtStyle = models.ArtStyle(*artStyle)
		}
		if userID != nil {
			j.Request.UserID = *userID
		}
		if imgURL != nil {
			j.ImagePath = *imgURL
		}
		if errMsg != nil {
			j.ErrorMessage = *errMsg
		}
		jobs = append(jobs, &j)
	}
	return jobs, rows.Err()
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ Store = (*PostgresStore)(nil)
