package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// HuggingFaceProvider calls the Hugging Face inference API. The model name is
// appended to the base URL.
type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewHuggingFaceProvider creates a Hugging Face provider.
func NewHuggingFaceProvider(apiKey, baseURL string, client *http.Client) *HuggingFaceProvider {
	if client == nil {
		client = http.DefaultClient
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HuggingFaceProvider{apiKey: apiKey, baseURL: baseURL, client: client}
}

type huggingFaceRequest struct {
	Inputs     string                `json:"inputs"`
	Parameters huggingFaceParameters `json:"parameters"`
}

type huggingFaceParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

type huggingFaceGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// Complete implements Provider.
func (p *HuggingFaceProvider) Complete(ctx context.Context, modelName, message string, maxTokens int) (string, error) {
	payload := huggingFaceRequest{
		Inputs: message,
		Parameters: huggingFaceParameters{
			MaxLength:   maxTokens,
			Temperature: 0.7,
		},
	}

	var out []huggingFaceGeneration
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}
	if err := postJSON(ctx, p.client, p.baseURL+modelName, headers, payload, &out); err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", errors.New("no generations returned by model")
	}
	return out[0].GeneratedText, nil
}
