package llm

import (
	"context"
	"fmt"

	"eldersafe/internal/config"
)

// Client is the narrow interface both structured-output adapters
// (scenario generation and performance summaries) are built on.
type Client interface {
	// Complete sends a prompt to the text-generation backend and returns
	// the raw completion text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewClient builds the configured backend client.
func NewClient(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllamaClient(cfg.Ollama.ServerURL, cfg.Ollama.Model, cfg.Timeout)
	case "openai":
		return NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
