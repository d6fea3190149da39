// Package handler contains one file per endpoint. Handlers are a pure
// translation layer: request shaping, status-code mapping, nothing else.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ketan-K17/wallpaper-app/internal/api/response"
	"github.com/Ketan-K17/wallpaper-app/internal/orchestrator"
	"github.com/google/uuid"
)

// Submitter defines the orchestrator surface the generate handler depends on.
type Submitter interface {
	Submit(ctx context.Context, req orchestrator.SubmitRequest) (uuid.UUID, error)
}

// NewGenerateHandler returns the http.HandlerFunc for POST /generate.
func NewGenerateHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Description string `json:"description"`
			Genre       string `json:"genre"`
			ArtStyle    string `json:"art_style"`
			UserID      string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body")
			return
		}

		id, err := svc.Submit(r.Context(), orchestrator.SubmitRequest{
			Description: req.Description,
			Genre:       req.Genre,
			ArtStyle:    req.ArtStyle,
			UserID:      req.UserID,
		})
		if err != nil {
			if errors.Is(err, orchestrator.ErrValidation) {
				response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
				return
			}
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to start generation")
			return
		}

		response.Created(w, generateResponse{
			GenerationID: id.String(),
			Status:       "pending",
			Message:      "Wallpaper generation started",
		})
	}
}

type generateResponse struct {
	GenerationID string `json:"generation_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}
