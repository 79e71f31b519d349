package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eldersafe/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaClient implements Client against a local Ollama server via langchaingo.
type OllamaClient struct {
	llm     *ollama.LLM
	timeout time.Duration
}

// NewOllamaClient creates a new OllamaClient.
func NewOllamaClient(serverURL, model string, timeout time.Duration) (*OllamaClient, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	client, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	logger.Get().Info("Initialized Ollama LLM client",
		zap.String("server_url", serverURL),
		zap.String("model", model))

	return &OllamaClient{llm: client, timeout: timeout}, nil
}

// Complete implements Client.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.llm.Call(ctx, prompt, llms.WithTemperature(0.7))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}
