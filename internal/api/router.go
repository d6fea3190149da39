package api

import (
	"net/http"

	mw "github.com/Ketan-K17/wallpaper-app/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

// Dependencies holds all handler dependencies for the router.
type Dependencies struct {
	RootHandler     http.HandlerFunc
	HealthHandler   http.HandlerFunc
	GenerateHandler http.HandlerFunc
	StatusHandler   http.HandlerFunc
	DownloadHandler http.HandlerFunc
	RecentHandler   http.HandlerFunc

	// ArtifactDir, when non-empty, is served read-only under PublicBasePath
	// so completed wallpapers are reachable at their image_url.
	ArtifactDir    string
	PublicBasePath string
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/", deps.RootHandler)
	r.Get("/health", deps.HealthHandler)

	r.Post("/generate", deps.GenerateHandler)
	r.Get("/status/{generationID}", deps.StatusHandler)
	r.Get("/download/{generationID}", deps.DownloadHandler)
	r.Get("/recent", deps.RecentHandler)

	if deps.ArtifactDir != "" {
		fs := http.StripPrefix(deps.PublicBasePath+"/",
			http.FileServer(http.Dir(deps.ArtifactDir)))
		r.Get(deps.PublicBasePath+"/*", fs.ServeHTTP)
	}

	return r
}
