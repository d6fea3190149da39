// Package orchestrator drives generation jobs from submission to a terminal
// state. Every submitted job gets exactly one background goroutine and exactly
// one generation attempt.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/cache"
	"github.com/Ketan-K17/wallpaper-app/internal/generator"
	"github.com/Ketan-K17/wallpaper-app/internal/registry"
	"github.com/Ketan-K17/wallpaper-app/internal/storage"
	"github.com/Ketan-K17/wallpaper-app/internal/store"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/google/uuid"
)

// ErrValidation marks bad input surfaced synchronously from Submit; no job is
// created when it is returned.
var ErrValidation = errors.New("invalid generation request")

const statusTTL = 30 * time.Minute

// SubmitRequest is the raw, unvalidated input to Submit.
type SubmitRequest struct {
	Description string
	Genre       string
	ArtStyle    string
	UserID      string
}

// Service validates requests, creates jobs, and runs the background
// generation workflow.
type Service struct {
	registry  *registry.Registry
	gen       models.ImageGenerator
	artifacts *storage.FSStore
	cache     cache.Cache
	archive   store.Store // nil when the archive is disabled
	timeout   time.Duration
}

func New(reg *registry.Registry, gen models.ImageGenerator, artifacts *storage.FSStore,
	ca cache.Cache, archive store.Store, timeout time.Duration) *Service {
	return &Service{
		registry:  reg,
		gen:       gen,
		artifacts: artifacts,
		cache:     ca,
		archive:   archive,
		timeout:   timeout,
	}
}

// Submit validates the request, creates a pending job, and dispatches the
// generation in a background goroutine. It returns the job id immediately and
// never blocks on the generation itself.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (uuid.UUID, error) {
	validated, err := validate(req)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.registry.Create(validated)
	if err != nil {
		return uuid.Nil, fmt.Errorf("creating job: %w", err)
	}

	_ = s.cache.SetJobStatus(ctx, id, models.JobStatusPending, statusTTL)

	go s.runGeneration(id, validated)

	return id, nil
}

func validate(req SubmitRequest) (models.GenerationRequest, error) {
	var out models.GenerationRequest

	if strings.TrimSpace(req.Description) == "" {
		return out, fmt.Errorf("%w: description is required", ErrValidation)
	}

	genre, err := models.ParseGenre(req.Genre)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	artStyle, err := models.ParseArtStyle(req.ArtStyle)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	out.Description = req.Description
	out.Genre = genre
	out.ArtStyle = artStyle
	out.UserID = req.UserID
	return out, nil
}

// runGeneration performs the generation in its own goroutine. It recovers
// from panics and always drives the job to completed or failed; no job is
// left in processing forever because the provider call carries the timeout
// budget.
func (s *Service) runGeneration(id uuid.UUID, req models.GenerationRequest) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in generation workflow", "job_id", id, "error", r)
			s.fail(ctx, id, fmt.Sprintf("internal error: %v", r))
		}
	}()

	s.advance(ctx, id, 10)

	prompt := generator.BuildPrompt(req)
	s.advance(ctx, id, 30)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	img, err := s.gen.Generate(genCtx, prompt)
	if err != nil {
		switch {
		case errors.Is(err, generator.ErrGenerationTimeout),
			errors.Is(err, context.DeadlineExceeded):
			s.fail(ctx, id, fmt.Sprintf("image generation timed out after %s", s.timeout))
		default:
			s.fail(ctx, id, fmt.Sprintf("image generation failed: %v", err))
		}
		return
	}
	if len(img) == 0 {
		s.fail(ctx, id, "image generation failed: provider returned no data")
		return
	}
	s.advance(ctx, id, 60)

	locator, err := s.artifacts.Save(id, img)
	if err != nil {
		s.fail(ctx, id, fmt.Sprintf("saving image failed: %v", err))
		return
	}
	s.advance(ctx, id, 90)

	if err := s.registry.Update(id, models.JobStatusCompleted,
		registry.WithImagePath(locator)); err != nil {
		slog.Error("completing job failed", "job_id", id, "error", err)
		return
	}
	_ = s.cache.SetJobStatus(ctx, id, models.JobStatusCompleted, statusTTL)
	s.archiveTerminal(id)

	slog.Info("wallpaper generated", "job_id", id, "provider", s.gen.Name(), "bytes", len(img))
}

// advance moves the job to processing at the given progress milestone.
func (s *Service) advance(ctx context.Context, id uuid.UUID, progress int) {
	if err := s.registry.Update(id, models.JobStatusProcessing,
		registry.WithProgress(progress)); err != nil {
		// Single-writer by construction; this indicates a bug.
		slog.Error("progress update rejected", "job_id", id, "progress", progress, "error", err)
		return
	}
	_ = s.cache.SetJobStatus(ctx, id, models.JobStatusProcessing, statusTTL)
}

func (s *Service) fail(ctx context.Context, id uuid.UUID, msg string) {
	if err := s.registry.Update(id, models.JobStatusFailed,
		registry.WithErrorMessage(msg)); err != nil {
		slog.Error("failing job rejected", "job_id", id, "error", err)
		return
	}
	_ = s.cache.SetJobStatus(ctx, id, models.JobStatusFailed, statusTTL)
	s.archiveTerminal(id)

	slog.Warn("wallpaper generation failed", "job_id", id, "reason", msg)
}

// archiveTerminal records the terminal job in the archive, best-effort.
func (s *Service) archiveTerminal(id uuid.UUID) {
	if s.archive == nil {
		return
	}
	job, err := s.registry.Get(id)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.archive.RecordTerminal(ctx, job); err != nil {
		slog.Error("archiving job failed", "job_id", id, "error", err)
	}
}
