package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ketan-K17/wallpaper-app/internal/api/response"
	"github.com/Ketan-K17/wallpaper-app/internal/registry"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ArtifactLoader reads a stored artifact by its locator.
type ArtifactLoader interface {
	Load(locator string) ([]byte, error)
}

// NewDownloadHandler returns the http.HandlerFunc for GET /download/{generationID}.
// Only completed generations can be downloaded.
func NewDownloadHandler(jobs JobGetter, artifacts ArtifactLoader) http.HandlerFunc {
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

		if job.Status != models.JobStatusCompleted {
			response.Error(w, http.StatusConflict, "NOT_READY",
				fmt.Sprintf("Generation is %s, not completed", job.Status))
			return
		}

		data, err := artifacts.Load(job.ImagePath)
		if err != nil {
			response.Error(w, http.StatusNotFound, "NOT_FOUND", "Image file not found")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=wallpaper_%s.png", job.ID))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
