package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig 描述各模型供应商的凭证与端点。
type AIConfig struct {
	OpenAI      ProviderConfig
	Anthropic   ProviderConfig
	HuggingFace ProviderConfig
	Google      ProviderConfig
	Ark         ArkConfig

	// MaxTokens 覆盖模型表中的默认值，nil 表示沿用模型表。
	MaxTokens *int
	// RequestTimeout 限制单次上游调用时长，0 表示不限制。
	RequestTimeout time.Duration
}

// ProviderConfig 描述一个基于 API Key 的供应商。
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

// Enabled 表示是否提供了 API Key。
func (c ProviderConfig) Enabled() bool {
	return c.APIKey != ""
}

// NewOpenAIChatModel 创建绑定到 modelName 的 OpenAI 模型实例。
func (c ProviderConfig) NewOpenAIChatModel(ctx context.Context, modelName string, maxTokens int, timeout time.Duration) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("OPENAI_API_KEY 未配置")
	}

	var tokens *int
	if maxTokens > 0 {
		tokens = &maxTokens
	}

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Model:     modelName,
		MaxTokens: tokens,
		Timeout:   timeout,
	})
}

// NewClaudeChatModel 创建绑定到 modelName 的 Anthropic 模型实例。
func (c ProviderConfig) NewClaudeChatModel(ctx context.Context, modelName string, maxTokens int) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY 未配置")
	}

	var baseURL *string
	if c.BaseURL != "" {
		url := c.BaseURL
		baseURL = &url
	}

	return claude.NewChatModel(ctx, &claude.Config{
		APIKey:    c.APIKey,
		BaseURL:   baseURL,
		Model:     modelName,
		MaxTokens: maxTokens,
	})
}

// ArkConfig 描述火山方舟模型配置。
type ArkConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
}

// Enabled 表示是否提供了必需的密钥。
func (c ArkConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel 使用配置创建一个模型实例。
func (c ArkConfig) NewChatModel(ctx context.Context, maxTokens int) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("Ark 凭证或模型配置缺失，至少提供 ARK_API_KEY + ARK_MODEL 或 AK/SK 组合")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	var tokens *int
	if maxTokens > 0 {
		tokens = &maxTokens
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   tokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	if maxTokens != nil && (*maxTokens < 1 || *maxTokens > math.MaxInt32) {
		return AIConfig{}, fmt.Errorf("invalid AI_MAX_TOKENS value %d: must be between 1 and %d", *maxTokens, math.MaxInt32)
	}

	timeoutSeconds, err := parseOptionalIntEnv("AI_REQUEST_TIMEOUT")
	if err != nil {
		return AIConfig{}, err
	}
	var timeout time.Duration
	if timeoutSeconds != nil && *timeoutSeconds > 0 {
		timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	return AIConfig{
		OpenAI: ProviderConfig{
			APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			BaseURL: getEnvOrDefault("OPENAI_API_URL", "https://api.openai.com/v1"),
		},
		Anthropic: ProviderConfig{
			APIKey:  strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			BaseURL: getEnvOrDefault("ANTHROPIC_API_URL", "https://api.anthropic.com"),
		},
		HuggingFace: ProviderConfig{
			APIKey:  strings.TrimSpace(os.Getenv("HUGGINGFACE_API_KEY")),
			BaseURL: getEnvOrDefault("HUGGINGFACE_API_URL", "https://api-inference.huggingface.co/models/"),
		},
		Google: ProviderConfig{
			APIKey: strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		},
		Ark: ArkConfig{
			APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
			AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
			SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
			Model:       strings.TrimSpace(os.Getenv("ARK_MODEL")),
			BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
			Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
			Temperature: temperature,
			TopP:        topP,
		},
		MaxTokens:      maxTokens,
		RequestTimeout: timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
