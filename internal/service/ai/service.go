package ai

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/zhouzirui/z-chat/backend/internal/config"
	"github.com/zhouzirui/z-chat/backend/internal/model/catalog"
	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

// ModelUnavailableReply is returned when the requested model is not in the catalog.
const ModelUnavailableReply = "Selected model is not available."

// Service routes chat messages to the provider that owns the selected model.
type Service struct {
	models    catalog.Store
	providers map[catalog.Provider]Provider
	cfg       config.AIConfig
	closers   []io.Closer
}

// chatModelFactory creates an eino chat model bound to one provider model name.
type chatModelFactory func(ctx context.Context, modelName string, maxTokens int) (model.BaseChatModel, error)

// NewService builds a provider for every family whose credentials are configured.
func NewService(ctx context.Context, models catalog.Store, cfg config.AIConfig) (*Service, error) {
	providers := make(map[catalog.Provider]Provider)
	var closers []io.Closer

	factories := make(map[catalog.Provider]chatModelFactory)
	if cfg.OpenAI.Enabled() {
		factories[catalog.ProviderOpenAI] = func(ctx context.Context, modelName string, maxTokens int) (model.BaseChatModel, error) {
			return cfg.OpenAI.NewOpenAIChatModel(ctx, modelName, maxTokens, cfg.RequestTimeout)
		}
	}
	if cfg.Anthropic.Enabled() {
		factories[catalog.ProviderAnthropic] = func(ctx context.Context, modelName string, maxTokens int) (model.BaseChatModel, error) {
			return cfg.Anthropic.NewClaudeChatModel(ctx, modelName, maxTokens)
		}
	}
	if cfg.Ark.Enabled() {
		factories[catalog.ProviderArk] = func(ctx context.Context, _ string, maxTokens int) (model.BaseChatModel, error) {
			return cfg.Ark.NewChatModel(ctx, maxTokens)
		}
	}
	for name, factory := range factories {
		provider, err := newEinoProvider(ctx, models, name, factory, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		providers[name] = provider
	}

	if cfg.HuggingFace.Enabled() {
		httpClient := &http.Client{Timeout: cfg.RequestTimeout}
		providers[catalog.ProviderHuggingFace] = NewHuggingFaceProvider(cfg.HuggingFace.APIKey, cfg.HuggingFace.BaseURL, httpClient)
	}
	if cfg.Google.Enabled() {
		gemini, err := NewGeminiProvider(ctx, cfg.Google.APIKey)
		if err != nil {
			return nil, err
		}
		providers[catalog.ProviderGoogle] = gemini
		closers = append(closers, gemini)
	}

	svc := NewServiceWithProviders(models, providers, cfg)
	svc.closers = closers
	return svc, nil
}

// newEinoProvider registers one chain for each catalog model served by provider.
func newEinoProvider(ctx context.Context, models catalog.Store, provider catalog.Provider, factory chatModelFactory, maxTokensOverride *int) (*EinoProvider, error) {
	p := NewEinoProvider()
	for _, m := range models.List() {
		if m.Provider != provider {
			continue
		}
		maxTokens := m.MaxTokens
		if maxTokensOverride != nil {
			maxTokens = *maxTokensOverride
		}
		chatModel, err := factory(ctx, m.ModelName, maxTokens)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s chat model %s: %w", provider, m.ModelName, err)
		}
		if err := p.Register(ctx, m.ModelName, chatModel); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewServiceWithProviders wires an explicit provider set.
func NewServiceWithProviders(models catalog.Store, providers map[catalog.Provider]Provider, cfg config.AIConfig) *Service {
	copied := make(map[catalog.Provider]Provider, len(providers))
	for name, provider := range providers {
		copied[name] = provider
	}
	return &Service{models: models, providers: copied, cfg: cfg}
}

// Reply returns the text shown to the user for message sent to modelID.
// Configuration and provider problems are reported as reply text rather than errors.
func (s *Service) Reply(ctx context.Context, modelID, message string) string {
	m, ok := s.models.FindByID(modelID)
	if !ok {
		log.Printf("[ai] unknown model=%q", modelID)
		return ModelUnavailableReply
	}

	provider, ok := s.providers[m.Provider]
	if !ok {
		return fmt.Sprintf("%s API key is not configured.", m.Provider.DisplayName())
	}

	maxTokens := m.MaxTokens
	if s.cfg.MaxTokens != nil {
		maxTokens = *s.cfg.MaxTokens
	}

	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	text, err := provider.Complete(ctx, m.ModelName, message, maxTokens)
	if err != nil {
		log.Printf("[ai] %s API error: model=%s err=%v", m.Provider, m.ID, err)
		return fmt.Sprintf("Error calling %s API: %v", m.Provider.DisplayName(), err)
	}

	log.Printf("[ai] generated response model=%s length=%d", m.ID, len(text))
	return text
}

// Available reports whether the provider for modelID has credentials.
func (s *Service) Available(modelID string) bool {
	m, ok := s.models.FindByID(modelID)
	if !ok {
		return false
	}
	_, ok = s.providers[m.Provider]
	return ok
}

// Models lists the catalog with availability flags.
func (s *Service) Models() []chat.ModelInfo {
	items := s.models.List()
	infos := make([]chat.ModelInfo, 0, len(items))
	for _, item := range items {
		_, available := s.providers[item.Provider]
		infos = append(infos, chat.ModelInfo{
			ID:        item.ID,
			Name:      strings.ToUpper(item.ID),
			Available: available,
		})
	}
	return infos
}

// Close releases provider clients that hold connections.
func (s *Service) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
