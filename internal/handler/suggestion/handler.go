package suggestion

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatterbox-app/backend/internal/model/suggestion"
)

// Handler serves the static prompt shortcuts.
type Handler struct {
	suggestions suggestion.Store
}

// New creates the suggestion handler.
func New(suggestions suggestion.Store) *Handler {
	return &Handler{suggestions: suggestions}
}

// RegisterRoutes wires the suggestion routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/suggestions", h.handleListSuggestions)
}

func (h *Handler) handleListSuggestions(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.suggestions.List())
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
