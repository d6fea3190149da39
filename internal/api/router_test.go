package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/api"
	"github.com/Ketan-K17/wallpaper-app/internal/api/handler"
	"github.com/Ketan-K17/wallpaper-app/internal/cache"
	"github.com/Ketan-K17/wallpaper-app/internal/generator/mock"
	"github.com/Ketan-K17/wallpaper-app/internal/orchestrator"
	"github.com/Ketan-K17/wallpaper-app/internal/registry"
	"github.com/Ketan-K17/wallpaper-app/internal/storage"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a fully in-memory stack: mock generator, temp artifact
// dir, no archive, no redis.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	reg := registry.New()
	artifacts, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)

	svc := orchestrator.New(reg, mock.NewProvider(), artifacts, cache.Noop{}, nil, 5*time.Second)

	return api.NewRouter(api.Dependencies{
		RootHandler:     handler.NewRootHandler(),
		HealthHandler:   handler.NewHealthHandler(nil),
		GenerateHandler: handler.NewGenerateHandler(svc),
		StatusHandler:   handler.NewStatusHandler(reg, "/images"),
		DownloadHandler: handler.NewDownloadHandler(reg, artifacts),
		RecentHandler:   handler.NewRecentHandler(reg, "/images"),
		ArtifactDir:     artifacts.Dir(),
		PublicBasePath:  "/images",
	})
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestRouter_RootAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_GenerationLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, "POST", "/generate", `{"description":"snowy mountain ridge","genre":"Nature"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		GenerationID string `json:"generation_id"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.GenerationID)
	assert.Equal(t, "pending", created.Status)

	// Poll until the mock provider completes.
	var status struct {
		Status   string `json:"status"`
		Progress int    `json:"progress"`
		ImageURL string `json:"image_url"`
	}
	require.Eventually(t, func() bool {
		w := do(router, "GET", "/status/"+created.GenerationID, "")
		if w.Code != http.StatusOK {
			return false
		}
		if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
			return false
		}
		return status.Status == models.JobStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 100, status.Progress)
	assert.Equal(t, "/images/"+created.GenerationID+".png", status.ImageURL)

	// Download endpoint serves the artifact.
	w = do(router, "GET", "/download/"+created.GenerationID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	// Static mount serves the same bytes at image_url.
	w2 := do(router, "GET", status.ImageURL, "")
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, w.Body.Bytes(), w2.Body.Bytes())

	// The completed job shows up in /recent.
	w = do(router, "GET", "/recent", "")
	require.Equal(t, http.StatusOK, w.Code)
	var recent struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	assert.Equal(t, 1, recent.Count)
}

func TestRouter_GenerateValidationError(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, "POST", "/generate", `{"description":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, "GET", "/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
