package ai

import "context"

// TextGenerator produces a completion for a prompt plus prior turns.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt string, history []Message, userPrompt string) (string, error)
}

// GeminiGenerator wraps GeminiClient with a fixed model.
type GeminiGenerator struct {
	client *GeminiClient
	model  string
}

func NewGeminiGenerator(client *GeminiClient, model string) *GeminiGenerator {
	return &GeminiGenerator{client: client, model: model}
}

// GenerateText implements TextGenerator using Gemini.
func (g *GeminiGenerator) GenerateText(ctx context.Context, systemPrompt string, history []Message, userPrompt string) (string, error) {
	return g.client.GenerateText(ctx, g.model, systemPrompt, history, userPrompt)
}
