package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/markl/internal/domain"
	"github.com/davidbz/markl/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	cache *domain.SemanticCacheService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(cache *domain.SemanticCacheService) *Handler {
	return &Handler{
		cache: cache,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

// HandleAsk processes question requests.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("question received",
		observability.Int("question_length", len(req.Question)))

	result, err := h.cache.Answer(ctx, req.Question)
	if err != nil {
		logger.Error("answer failed", observability.Error(err))
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	logger.Info("question answered",
		observability.String("source", string(result.Source)))

	setCacheHeaders(w, result)
	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		logger.Error("failed to encode response", observability.Error(encodeErr))
		return
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it.
		return
	}
}

// setCacheHeaders exposes hit/miss metadata without polluting the body.
func setCacheHeaders(w http.ResponseWriter, result *domain.QueryResult) {
	switch result.Source {
	case domain.SourceCache:
		w.Header().Set("X-Markl-Cache", "HIT")
	case domain.SourceLLM:
		w.Header().Set("X-Markl-Cache", "MISS")
	}

	if result.Similarity != nil {
		w.Header().Set("X-Markl-Cache-Similarity", fmt.Sprintf("%.4f", *result.Similarity))
	}
	if result.CachedAt != nil {
		w.Header().Set("X-Markl-Cache-Timestamp", result.CachedAt.Format(time.RFC3339))
	}
}

// statusForError maps classified domain errors to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidQuestion):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmbedding), errors.Is(err, domain.ErrAnswerGeneration):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
