package welcome

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	banner "github.com/zhouzirui/z-chat/backend/internal/ui/welcome"
)

// Handler serves the welcome page.
type Handler struct {
	page string
}

// New creates the welcome page handler.
func New() *Handler {
	return &Handler{page: banner.Page()}
}

// RegisterRoutes 注册欢迎页路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, h.page); err != nil {
		log.Printf("[welcome] failed to write page: %v", err)
	}
}
