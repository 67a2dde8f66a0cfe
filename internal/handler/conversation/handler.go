package conversation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	conversationService "github.com/chatterbox-app/backend/internal/service/conversation"
)

// Handler exposes the conversation REST surface.
type Handler struct {
	convSvc *conversationService.Service
}

// New creates the conversation handler.
func New(convSvc *conversationService.Service) *Handler {
	return &Handler{convSvc: convSvc}
}

// RegisterRoutes wires the conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/conversation", h.handleCreateConversation)
	r.Get("/conversation/{conversationID}", h.handleGetConversation)
	r.Get("/conversation/{conversationID}/transcript", h.handleTranscript)
	r.Post("/messages", h.handleSubmitMessage)
}

func (h *Handler) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	conversation, err := h.convSvc.CreateConversation(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, conversation)
}

func (h *Handler) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	conversation, err := h.convSvc.GetConversation(r.Context(), conversationID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, conversation)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	entries, err := h.convSvc.LoadTranscript(r.Context(), conversationID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// handleSubmitMessage accepts a user message. Empty or whitespace-only
// text is ignored without an error body, mirroring the submit contract.
func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ConversationID string `json:"conversationId"`
		Text           string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.ConversationID == "" {
		respondError(w, http.StatusBadRequest, "conversationId is required")
		return
	}

	accepted, err := h.convSvc.Submit(r.Context(), payload.ConversationID, payload.Text)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, conversationService.ErrConversationNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err.Error())
		return
	}

	if !accepted {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes a JSON error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
