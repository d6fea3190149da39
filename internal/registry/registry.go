// Package registry holds the in-memory job registry. It is the single source
// of truth for job status and progress; every other component only reads it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// ErrInvalidTransition indicates an attempted mutation of a terminal job or a
// progress regression. User input can never trigger it; treat it as a bug
// signal when logged.
var ErrInvalidTransition = errors.New("invalid job transition")

type updateParams struct {
	Progress     *int
	ImagePath    *string
	ErrorMessage *string
}

type UpdateOption func(*updateParams)

func WithProgress(p int) UpdateOption {
	return func(u *updateParams) {
		u.Progress = &p
	}
}

func WithImagePath(path string) UpdateOption {
	return func(u *updateParams) {
		u.ImagePath = &path
	}
}

func WithErrorMessage(msg string) UpdateOption {
	return func(u *updateParams) {
		u.ErrorMessage = &msg
	}
}

// Registry is a mutex-guarded map of generation jobs. Reads return snapshots,
// never live records. Safe for concurrent use; by construction only the
// goroutine that created a job ever updates it.
type Registry struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*models.GenerationJob
}

func New() *Registry {
	return &Registry{jobs: make(map[uuid.UUID]*models.GenerationJob)}
}

// Create allocates a fresh id and stores a new pending job.
func (r *Registry) Create(req models.GenerationRequest) (uuid.UUID, error) {
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; exists {
		// uuid v4 collision; practically unreachable.
		return uuid.Nil, fmt.Errorf("duplicate job id %s", id)
	}

	r.jobs[id] = &models.GenerationJob{
		ID:        id,
		Status:    models.JobStatusPending,
		Progress:  0,
		Request:   req,
		CreatedAt: time.Now().UTC(),
	}
	return id, nil
}

// Get returns a snapshot of the job, or ErrNotFound.
func (r *Registry) Get(id uuid.UUID) (*models.GenerationJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	snapshot := *job
	return &snapshot, nil
}

// Update applies a monotonic state transition. Terminal jobs reject every
// further update with ErrInvalidTransition and are left unchanged.
func (r *Registry) Update(id uuid.UUID, status string, opts ...UpdateOption) error {
	var params updateParams
	for _, opt := range opts {
		opt(&params)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if models.IsTerminal(job.Status) {
		return fmt.Errorf("%w: job %s already %s", ErrInvalidTransition, id, job.Status)
	}
	if !allowedTransition(job.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, status)
	}

	progress := job.Progress
	if params.Progress != nil {
		if *params.Progress < job.Progress {
			return fmt.Errorf("%w: progress regression %d -> %d", ErrInvalidTransition, job.Progress, *params.Progress)
		}
		progress = *params.Progress
	}

	switch status {
	case models.JobStatusProcessing:
		// Progress 100 is reserved for completion.
		if progress > 99 {
			progress = 99
		}
	case models.JobStatusCompleted:
		if params.ImagePath == nil || *params.ImagePath == "" {
			return fmt.Errorf("%w: completed without image path", ErrInvalidTransition)
		}
		progress = 100
		job.ImagePath = *params.ImagePath
	case models.JobStatusFailed:
		if params.ErrorMessage == nil || *params.ErrorMessage == "" {
			return fmt.Errorf("%w: failed without error message", ErrInvalidTransition)
		}
		job.ErrorMessage = *params.ErrorMessage
	}

	job.Status = status
	job.Progress = progress
	if models.IsTerminal(status) {
		now := time.Now().UTC()
		job.CompletedAt = &now
	}
	return nil
}

// ListRecent returns snapshots ordered most-recent-first by CreatedAt,
// optionally filtered by status, at most limit entries.
func (r *Registry) ListRecent(status string, limit int) []*models.GenerationJob {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.GenerationJob, 0, limit)
	for _, job := range r.jobs {
		if status != "" && job.Status != status {
			continue
		}
		snapshot := *job
		out = append(out, &snapshot)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Restore seeds a terminal job loaded from the archive, preserving its id and
// timestamps. Live (non-terminal) jobs cannot be restored, and an existing
// record is never overwritten.
func (r *Registry) Restore(job models.GenerationJob) error {
	if !models.IsTerminal(job.Status) {
		return fmt.Errorf("%w: restore of non-terminal job %s", ErrInvalidTransition, job.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; exists {
		return nil
	}
	restored := job
	r.jobs[job.ID] = &restored
	return nil
}

func allowedTransition(from, to string) bool {
	switch from {
	case models.JobStatusPending:
		return to == models.JobStatusProcessing || to == models.JobStatusFailed
	case models.JobStatusProcessing:
		return to == models.JobStatusProcessing ||
			to == models.JobStatusCompleted ||
			to == models.JobStatusFailed
	default:
		return false
	}
}
