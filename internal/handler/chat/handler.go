package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
	"github.com/zhouzirui/z-chat/backend/pkg/utils"
)

// Replier produces the reply text for a chat message.
type Replier interface {
	Reply(ctx context.Context, modelID, message string) string
}

// Handler 聊天服务的HTTP处理器
type Handler struct {
	replier Replier
}

// New 创建聊天处理器
func New(replier Replier) *Handler {
	return &Handler{replier: replier}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// handleChat 处理一次问答
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modelID := strings.TrimSpace(payload.Model)
	if modelID == "" {
		modelID = chat.DefaultModel
	}

	reply := h.replier.Reply(r.Context(), modelID, payload.Message)
	utils.RespondJSON(w, http.StatusOK, chat.Response{Response: reply})
}
