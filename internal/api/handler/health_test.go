package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(_ context.Context) error { return f.err }

func TestHealthHandler_AllHealthy(t *testing.T) {
	h := NewHealthHandler(map[string]Pinger{
		"database": fakePinger{},
		"cache":    fakePinger{},
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[healthResponse](t, rec)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ok", resp.Services["database"])
	assert.Equal(t, "ok", resp.Services["cache"])
}

func TestHealthHandler_DegradedOnFailedProbe(t *testing.T) {
	h := NewHealthHandler(map[string]Pinger{
		"database": fakePinger{err: errors.New("connection refused")},
		"cache":    fakePinger{},
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[healthResponse](t, rec)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unavailable", resp.Services["database"])
}

func TestHealthHandler_NilDependencyIsDisabled(t *testing.T) {
	h := NewHealthHandler(map[string]Pinger{"database": nil})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := decodeBody[healthResponse](t, rec)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "disabled", resp.Services["database"])
}

func TestRootHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRootHandler()(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "AI Wallpaper Generator API", resp["message"])
	assert.Equal(t, "running", resp["status"])
}
