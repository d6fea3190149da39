package handler

import (
	"net/http"
	"path"
	"strconv"

	"github.com/Ketan-K17/wallpaper-app/internal/api/response"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// RecentLister defines the registry surface the recent handler depends on.
type RecentLister interface {
	ListRecent(status string, limit int) []*models.GenerationJob
}

type recentResponse struct {
	Count       int              `json:"count"`
	Generations []statusResponse `json:"generations"`
}

// NewRecentHandler returns the http.HandlerFunc for GET /recent. It lists
// completed generations, newest first. The limit query parameter defaults
// to 10 and is clamped to [1, 50].
func NewRecentHandler(jobs RecentLister, publicBasePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR",
					"limit must be an integer")
				return
			}
			limit = n
		}
		if limit < 1 {
			limit = 1
		}
		if limit > maxRecentLimit {
			limit = maxRecentLimit
		}

		completed := jobs.ListRecent(models.JobStatusCompleted, limit)

		out := make([]statusResponse, 0, len(completed))
		for _, job := range completed {
			item := statusResponse{
				GenerationID: job.ID.String(),
				Status:       job.Status,
				Progress:     job.Progress,
				CreatedAt:    job.CreatedAt,
				CompletedAt:  job.CompletedAt,
			}
			if job.ImagePath != "" {
				item.ImageURL = path.Join(publicBasePath, job.ImagePath)
			}
			out = append(out, item)
		}

		response.JSON(w, recentResponse{Count: len(out), Generations: out})
	}
}
