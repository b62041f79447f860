package ai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider serves Google Gemini models through the generative-ai SDK.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Gemini client bound to apiKey.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Complete implements Provider.
func (p *GeminiProvider) Complete(ctx context.Context, modelName, message string, maxTokens int) (string, error) {
	model := p.client.GenerativeModel(modelName)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(min(maxTokens, math.MaxInt32)))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("no text returned by model")
	}
	return text, nil
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}
