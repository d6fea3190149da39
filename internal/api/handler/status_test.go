package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ketan-K17/wallpaper-app/internal/registry"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statusRouter mounts the handler behind the real route pattern so that
// chi.URLParam resolves in tests.
func statusRouter(reg *registry.Registry) http.Handler {
	r := chi.NewRouter()
	r.Get("/status/{generationID}", NewStatusHandler(reg, "/images"))
	return r
}

func TestStatusHandler_Pending(t *testing.T) {
	reg := registry.New()
	id, err := reg.Create(models.GenerationRequest{Description: "aurora over a fjord"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	statusRouter(reg).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/status/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[statusResponse](t, rec)
	assert.Equal(t, id.String(), resp.GenerationID)
	assert.Equal(t, models.JobStatusPending, resp.Status)
	assert.Equal(t, 0, resp.Progress)
	assert.Empty(t, resp.ImageURL)
	assert.Nil(t, resp.CompletedAt)
}

func TestStatusHandler_Completed(t *testing.T) {
	reg := registry.New()
	id, err := reg.Create(models.GenerationRequest{Description: "desert dunes"})
	require.NoError(t, err)
	require.NoError(t, reg.Update(id, models.JobStatusProcessing))
	require.NoError(t, reg.Update(id, models.JobStatusCompleted,
		registry.WithImagePath(id.String()+".png")))

	rec := httptest.NewRecorder()
	statusRouter(reg).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/status/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[statusResponse](t, rec)
	assert.Equal(t, models.JobStatusCompleted, resp.Status)
	assert.Equal(t, 100, resp.Progress)
	assert.Equal(t, "/images/"+id.String()+".png", resp.ImageURL)
	assert.NotNil(t, resp.CompletedAt)
}

func TestStatusHandler_Failed(t *testing.T) {
	reg := registry.New()
	id, err := reg.Create(models.GenerationRequest{Description: "storm clouds"})
	require.NoError(t, err)
	require.NoError(t, reg.Update(id, models.JobStatusFailed,
		registry.WithErrorMessage("image generation failed: provider unavailable")))

	rec := httptest.NewRecorder()
	statusRouter(reg).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/status/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[statusResponse](t, rec)
	assert.Equal(t, models.JobStatusFailed, resp.Status)
	assert.Contains(t, resp.ErrorMessage, "provider unavailable")
	assert.Empty(t, resp.ImageURL)
}

func TestStatusHandler_UnknownID(t *testing.T) {
	rec := httptest.NewRecorder()
	statusRouter(registry.New()).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/status/1b4e28ba-2fa1-11d2-883f-0016d3cca427", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestStatusHandler_MalformedID(t *testing.T) {
	rec := httptest.NewRecorder()
	statusRouter(registry.New()).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/status/not-a-uuid", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}
