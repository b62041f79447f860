package catalog

// Provider names the upstream API family that serves a model.
type Provider string

const (
	ProviderOpenAI      Provider = "openai"
	ProviderAnthropic   Provider = "anthropic"
	ProviderHuggingFace Provider = "huggingface"
	ProviderGoogle      Provider = "google"
	ProviderArk         Provider = "ark"
)

// DisplayName is the human-facing provider name used in fallback replies.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderHuggingFace:
		return "Hugging Face"
	case ProviderGoogle:
		return "Google Gemini"
	case ProviderArk:
		return "Ark"
	default:
		return string(p)
	}
}

const defaultMaxTokens = 500

// ModelConfig maps a selectable model id to the provider model that serves it.
type ModelConfig struct {
	ID        string   `json:"id"`
	Provider  Provider `json:"provider"`
	ModelName string   `json:"modelName"`
	MaxTokens int      `json:"maxTokens"`
}

// Seed returns the built-in model table. arkModel is the Ark endpoint id and
// may be empty, in which case the doubao entry is still listed but unavailable.
func Seed(arkModel string) []ModelConfig {
	return []ModelConfig{
		{ID: "gpt-4", Provider: ProviderOpenAI, ModelName: "gpt-4", MaxTokens: defaultMaxTokens},
		{ID: "gpt-3.5", Provider: ProviderOpenAI, ModelName: "gpt-3.5-turbo", MaxTokens: defaultMaxTokens},
		{ID: "claude", Provider: ProviderAnthropic, ModelName: "claude-3-opus-20240229", MaxTokens: defaultMaxTokens},
		{ID: "llama", Provider: ProviderHuggingFace, ModelName: "meta-llama/Llama-2-70b-chat-hf", MaxTokens: defaultMaxTokens},
		{ID: "gemini", Provider: ProviderGoogle, ModelName: "gemini-pro", MaxTokens: defaultMaxTokens},
		{ID: "doubao", Provider: ProviderArk, ModelName: arkModel, MaxTokens: defaultMaxTokens},
	}
}
