package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	conversationHandler "github.com/chatterbox-app/backend/internal/handler/conversation"
	"github.com/chatterbox-app/backend/internal/handler/stream"
	suggestionHandler "github.com/chatterbox-app/backend/internal/handler/suggestion"
	"github.com/chatterbox-app/backend/internal/handler/ws"
	middlewarePkg "github.com/chatterbox-app/backend/internal/middleware"
	suggestionModel "github.com/chatterbox-app/backend/internal/model/suggestion"
	conversationService "github.com/chatterbox-app/backend/internal/service/conversation"
	"github.com/chatterbox-app/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(suggestions suggestionModel.Store, convSvc *conversationService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	convHandler := conversationHandler.New(convSvc)
	sugHandler := suggestionHandler.New(suggestions)
	streamHandler := stream.New(convSvc)
	wsHandler := ws.New(convSvc)

	r.Route("/api", func(api chi.Router) {
		sugHandler.RegisterRoutes(api)
		convHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		// Submit-and-stream endpoint: one round trip covers the user
		// echo, the typing indicator, and the delayed bot reply.
		api.Get("/stream/{conversationID}", func(w http.ResponseWriter, r *http.Request) {
			conversationID := chi.URLParam(r, "conversationID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, conversationID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
