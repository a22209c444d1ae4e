// Package handlers provides HTTP handlers for the CardMatch API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardmatch-ai/cardmatch/internal/observability"
	"github.com/cardmatch-ai/cardmatch/internal/recommend"
)

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	logger *observability.Logger
	engine *recommend.Engine
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(logger *observability.Logger, engine *recommend.Engine) *RecommendHandler {
	return &RecommendHandler{logger: logger, engine: engine}
}

// recommendRequestDTO is the wire shape of a recommendation request.
type recommendRequestDTO struct {
	Query   string            `json:"query"`
	Filters recommend.Filters `json:"filters"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
}

// Recommend handles POST /api/v1/recommend.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.WithContext(ctx)

	var dto recommendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Query:   dto.Query,
		Filters: dto.Filters,
		Offset:  dto.Offset,
		Limit:   dto.Limit,
	})
	if errors.Is(err, recommend.ErrNoQuery) {
		writeError(w, http.StatusBadRequest, "No query provided")
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Recommendation failed")
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
