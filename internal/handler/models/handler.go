package models

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
	"github.com/zhouzirui/z-chat/backend/pkg/utils"
)

// Lister reports the selectable models.
type Lister interface {
	Models() []chat.ModelInfo
}

// Handler 模型列表的HTTP处理器
type Handler struct {
	models Lister
}

// New 创建模型列表处理器
func New(models Lister) *Handler {
	return &Handler{models: models}
}

// RegisterRoutes 注册模型相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/models", h.handleListModels)
}

func (h *Handler) handleListModels(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, chat.ModelList{Models: h.models.Models()})
}
