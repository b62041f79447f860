package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// EinoProvider runs a single-turn prompt chain per registered model name.
// Chat models are bound to their model name and token limit when created.
type EinoProvider struct {
	chains map[string]compose.Runnable[map[string]any, *schema.Message]
}

// NewEinoProvider returns a provider with no models registered.
func NewEinoProvider() *EinoProvider {
	return &EinoProvider{chains: make(map[string]compose.Runnable[map[string]any, *schema.Message])}
}

// Register compiles the prompt → model chain for modelName.
func (p *EinoProvider) Register(ctx context.Context, modelName string, chatModel model.BaseChatModel) error {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return fmt.Errorf("failed to compile chat chain for %s: %w", modelName, err)
	}
	p.chains[modelName] = runnable
	return nil
}

// Complete implements Provider. maxTokens is ignored; the limit was fixed at Register time.
func (p *EinoProvider) Complete(ctx context.Context, modelName, message string, _ int) (string, error) {
	chain, ok := p.chains[modelName]
	if !ok {
		return "", fmt.Errorf("model %q is not registered", modelName)
	}

	response, err := chain.Invoke(ctx, map[string]any{"query": message})
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	return response.Content, nil
}
