package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	conversationService "github.com/chatterbox-app/backend/internal/service/conversation"
)

const (
	readDeadline = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler serves the live conversation feed over WebSocket.
type Handler struct {
	convSvc  *conversationService.Service
	upgrader websocket.Upgrader
}

// New creates the WebSocket handler.
func New(convSvc *conversationService.Service) *Handler {
	return &Handler{
		convSvc: convSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes wires the WebSocket routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{conversationID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// TextMessage is the inbound submit payload.
type TextMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type           string      `json:"type"`
	ConversationID string      `json:"conversationId,omitempty"`
	Data           interface{} `json:"data,omitempty"`
	Timestamp      int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	if conversationID == "" {
		http.Error(w, "conversationID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.convSvc.GetConversation(r.Context(), conversationID); err != nil {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}

	events, err := h.convSvc.Subscribe(conversationID)
	if err != nil {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.convSvc.Unsubscribe(conversationID, events)
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	defer h.convSvc.Unsubscribe(conversationID, events)

	log.Printf("[websocket] new connection for conversation: %s", conversationID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	// All writes go through outbound; gorilla permits one concurrent writer.
	outbound := make(chan outgoingMessage, 16)
	go h.writeLoop(ctx, conn, outbound)
	go h.forwardEvents(ctx, outbound, events)

	h.send(outbound, outgoingMessage{
		Type:           "connected",
		ConversationID: conversationID,
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[websocket] read error: %v", err)
				}
				return
			}

			conn.SetReadDeadline(time.Now().Add(readDeadline))
			h.handleMessage(ctx, outbound, conversationID, &msg)
		}
	}
}

// writeLoop owns the connection for writing: it forwards feed events,
// outbound frames, and keepalive pings.
func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, outbound <-chan outgoingMessage) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-outbound:
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("[websocket] write failed: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}

// forwardEvents relays conversation feed events to the client as entry
// and typing frames.
func (h *Handler) forwardEvents(ctx context.Context, outbound chan<- outgoingMessage, events <-chan conversationService.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			switch event.Type {
			case conversationService.EventEntry:
				h.send(outbound, outgoingMessage{
					Type:           "entry",
					ConversationID: event.ConversationID,
					Data:           event.Entry,
				})
			case conversationService.EventTyping:
				h.send(outbound, outgoingMessage{
					Type:           "typing",
					ConversationID: event.ConversationID,
					Data:           map[string]bool{"typing": event.Typing},
				})
			}
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, outbound chan<- outgoingMessage, conversationID string, msg *inboundMessage) {
	switch msg.Type {
	case "text":
		h.handleTextMessage(ctx, outbound, conversationID, msg.Data)
	default:
		h.sendError(outbound, "unsupported message type: "+msg.Type)
	}
}

func (h *Handler) handleTextMessage(ctx context.Context, outbound chan<- outgoingMessage, conversationID string, raw json.RawMessage) {
	var text TextMessage
	if err := json.Unmarshal(raw, &text); err != nil {
		h.sendError(outbound, "invalid text payload")
		return
	}

	accepted, err := h.convSvc.Submit(ctx, conversationID, text.Text)
	if err != nil {
		h.sendError(outbound, err.Error())
		return
	}
	if !accepted {
		// Whitespace-only input is dropped without a transcript change.
		h.send(outbound, outgoingMessage{
			Type:           "ignored",
			ConversationID: conversationID,
		})
	}
}

func (h *Handler) send(outbound chan<- outgoingMessage, msg outgoingMessage) {
	msg.Timestamp = time.Now().UnixMilli()
	select {
	case outbound <- msg:
	default:
		log.Printf("[websocket] dropping frame, outbound buffer full")
	}
}

func (h *Handler) sendError(outbound chan<- outgoingMessage, errMsg string) {
	h.send(outbound, outgoingMessage{
		Type: "error",
		Data: map[string]string{"message": errMsg},
	})
}
