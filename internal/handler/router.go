package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/z-chat/backend/internal/handler/chat"
	"github.com/zhouzirui/z-chat/backend/internal/handler/models"
	"github.com/zhouzirui/z-chat/backend/internal/handler/welcome"
	middlewarePkg "github.com/zhouzirui/z-chat/backend/internal/middleware"
	aiService "github.com/zhouzirui/z-chat/backend/internal/service/ai"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(aiSvc *aiService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	welcome.New().RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		chat.New(aiSvc).RegisterRoutes(api)
		models.New(aiSvc).RegisterRoutes(api)
	})

	return r
}
