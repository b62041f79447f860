package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zhouzirui/z-chat/backend/internal/config"
	"github.com/zhouzirui/z-chat/backend/internal/model/catalog"
	chatModel "github.com/zhouzirui/z-chat/backend/internal/model/chat"
	aiService "github.com/zhouzirui/z-chat/backend/internal/service/ai"
)

func newTestRouter() http.Handler {
	svc := aiService.NewServiceWithProviders(
		catalog.NewMemoryStore(catalog.Seed("")),
		map[catalog.Provider]aiService.Provider{
			catalog.ProviderOpenAI: aiService.ProviderFunc(func(context.Context, string, string, int) (string, error) {
				return "Hi there!", nil
			}),
		},
		config.AIConfig{},
	)
	return NewRouter(svc)
}

func TestRouterChatEndpoint(t *testing.T) {
	router := newTestRouter()
	payload, _ := json.Marshal(chatModel.Request{Message: "Hello", Model: "gpt-4"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body chatModel.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Response != "Hi there!" {
		t.Fatalf("unexpected response %q", body.Response)
	}
}

func TestRouterUnknownModelFallback(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"Hello","model":"nope"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body chatModel.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Response != aiService.ModelUnavailableReply {
		t.Fatalf("unexpected response %q", body.Response)
	}
}

func TestRouterModelsAndWelcome(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/models", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("models: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(resp.Body.String(), "Welcome to My Website!") {
		t.Fatalf("welcome page missing heading: %s", resp.Body.String())
	}
}
