package handler

import (
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/api/response"
	"github.com/Ketan-K17/wallpaper-app/internal/registry"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// JobGetter defines the registry surface the status and download handlers
// depend on.
type JobGetter interface {
	Get(id uuid.UUID) (*models.GenerationJob, error)
}

type statusResponse struct {
	GenerationID string     `json:"generation_id"`
	Status       string     `json:"status"`
	Progress     int        `json:"progress"`
	ImageURL     string     `json:"image_url,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// NewStatusHandler returns the http.HandlerFunc for GET /status/{generationID}.
// publicBasePath is the URL prefix under which artifacts are served.
func NewStatusHandler(jobs JobGetter, publicBasePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "generationID"))
		if err != nil {
			response.Error(w, http.StatusNotFound, "NOT_FOUND", "Generation not found")
			return
		}

		job, err := jobs.Get(id)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "NOT_FOUND", "Generation not found")
				return
			}
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to look up generation")
			return
		}

		resp := statusResponse{
			GenerationID: job.ID.String(),
			Status:       job.Status,
			Progress:     job.Progress,
			ErrorMessage: job.ErrorMessage,
			CreatedAt:    job.CreatedAt,
			CompletedAt:  job.CompletedAt,
		}
		if job.Status == models.JobStatusCompleted && job.ImagePath != "" {
			resp.ImageURL = path.Join(publicBasePath, job.ImagePath)
		}
		response.JSON(w, resp)
	}
}
