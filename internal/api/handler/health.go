package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/api/response"
)

// Pinger is the liveness probe implemented by the archive store and the
// status cache. A nil Pinger means the dependency is not configured and is
// reported as "disabled".
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// NewHealthHandler returns the http.HandlerFunc for GET /health. The service
// is degraded, not down, when an optional dependency fails its probe.
func NewHealthHandler(deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "healthy", Services: make(map[string]string, len(deps))}
		for name, p := range deps {
			switch {
			case p == nil:
				resp.Services[name] = "disabled"
			case p.Ping(ctx) != nil:
				resp.Services[name] = "unavailable"
				resp.Status = "degraded"
			default:
				resp.Services[name] = "ok"
			}
		}
		response.JSON(w, resp)
	}
}

// NewRootHandler returns the http.HandlerFunc for GET /, a simple banner for
// anyone probing the API by hand.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, map[string]string{
			"message": "AI Wallpaper Generator API",
			"status":  "running",
		})
	}
}
