package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/chatterbox-app/backend/internal/model/chat"
	conversationService "github.com/chatterbox-app/backend/internal/service/conversation"
	"github.com/chatterbox-app/backend/pkg/utils"
)

// Handler manages streaming bot replies via Server-Sent Events.
type Handler struct {
	convSvc *conversationService.Service
}

// New creates a new stream handler.
func New(convSvc *conversationService.Service) *Handler {
	return &Handler{convSvc: convSvc}
}

// StreamResponse represents a streaming response chunk.
type StreamResponse struct {
	Event          string `json:"event"`
	ConversationID string `json:"conversationId,omitempty"`
	Author         string `json:"author,omitempty"`
	Content        string `json:"content,omitempty"`
	Typing         bool   `json:"typing,omitempty"`
	Finished       bool   `json:"finished,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HandleStreamRequest submits a user message and streams the resulting
// conversation events (user echo, typing indicator, bot reply) until the
// reply resolves.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, conversationID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	if _, err := h.convSvc.GetConversation(ctx, conversationID); err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("failed to resolve conversation: %v", err))
		return err
	}

	// Subscribe before submitting so the submit's own events are captured.
	events, err := h.convSvc.Subscribe(conversationID)
	if err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("failed to subscribe: %v", err))
		return err
	}
	defer h.convSvc.Unsubscribe(conversationID, events)

	h.sendSSE(w, flusher, StreamResponse{
		Event:          "start",
		ConversationID: conversationID,
	})

	accepted, err := h.convSvc.Submit(ctx, conversationID, userMessage)
	if err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("submit failed: %v", err))
		return err
	}
	if !accepted {
		// Whitespace-only input: nothing was appended and no reply will come.
		h.sendSSE(w, flusher, StreamResponse{
			Event:          "end",
			ConversationID: conversationID,
			Finished:       true,
		})
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[stream] client gone before reply resolved conversation=%s", conversationID)
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return fmt.Errorf("event feed closed")
			}
			if done := h.forwardEvent(w, flusher, conversationID, event); done {
				return nil
			}
		}
	}
}

// forwardEvent translates one service event into an SSE frame. It reports
// true once the bot reply has been sent and the stream is complete.
func (h *Handler) forwardEvent(w http.ResponseWriter, flusher http.Flusher, conversationID string, event conversationService.Event) bool {
	switch event.Type {
	case conversationService.EventTyping:
		h.sendSSE(w, flusher, StreamResponse{
			Event:          "typing",
			ConversationID: conversationID,
			Typing:         event.Typing,
		})
	case conversationService.EventEntry:
		if event.Entry == nil {
			return false
		}
		h.sendSSE(w, flusher, StreamResponse{
			Event:          "message",
			ConversationID: conversationID,
			Author:         event.Entry.Author,
			Content:        event.Entry.Text,
		})
		if event.Entry.Author == chat.AuthorBot {
			h.sendSSE(w, flusher, StreamResponse{
				Event:          "end",
				ConversationID: conversationID,
				Finished:       true,
			})
			log.Printf("[stream] completed reply for conversation=%s", conversationID)
			return true
		}
	}
	return false
}

// sendSSE sends a Server-Sent Event.
func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEChunk(w, flusher, response)
}

// sendSSEError sends an error via Server-Sent Events.
func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{
		Event: "error",
		Error: errorMsg,
	})
}
