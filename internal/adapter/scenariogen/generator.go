package scenariogen

import (
	"context"
	"fmt"

	"eldersafe/internal/adapter/llm"
	"eldersafe/internal/domain"
	"eldersafe/internal/logger"

	"go.uber.org/zap"
)

// Generator implements domain.ScenarioGenerationService on top of a
// text-generation client, enforcing the per-kind output schemas.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// GenerateScenarios requests count scenarios of the given kind and
// validates the structured output. Backend errors, unparseable output
// and schema violations all surface as a generation failure.
func (g *Generator) GenerateScenarios(ctx context.Context, kind domain.Kind, count int) ([]domain.Scenario, error) {
	if count <= 0 {
		return nil, domain.NewInvalidInputError("scenario count must be positive")
	}
	if !kind.Valid() {
		return nil, domain.NewInvalidKindError(string(kind))
	}

	prompt, err := buildPrompt(kind, count)
	if err != nil {
		return nil, domain.NewGenerationFailedError(err)
	}

	l := logger.Get()
	l.Info("Requesting scenario generation",
		zap.String("kind", string(kind)),
		zap.Int("count", count))

	raw, err := g.client.Complete(ctx, prompt)
	if err != nil {
		l.Error("Scenario generation backend call failed", zap.Error(err), zap.String("kind", string(kind)))
		return nil, domain.NewGenerationFailedError(err)
	}

	jsonStr, err := extractJSONArray(raw)
	if err != nil {
		l.Error("Could not locate JSON array in generation response",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("raw_response", truncateForLog(raw)))
		return nil, domain.NewGenerationFailedError(err)
	}

	scenarios, err := decodeScenarios(kind, jsonStr)
	if err != nil {
		l.Error("Generation response failed schema validation",
			zap.Error(err),
			zap.String("kind", string(kind)))
		return nil, domain.NewGenerationFailedError(err)
	}

	if len(scenarios) == 0 {
		return nil, domain.NewGenerationFailedError(fmt.Errorf("backend returned an empty scenario list"))
	}
	if len(scenarios) != count {
		// Usable but off-count; the session layer caps anyway.
		l.Warn("Generation returned unexpected scenario count",
			zap.String("kind", string(kind)),
			zap.Int("requested", count),
			zap.Int("received", len(scenarios)))
	}

	l.Info("Scenario generation succeeded",
		zap.String("kind", string(kind)),
		zap.Int("count", len(scenarios)))
	return scenarios, nil
}

func truncateForLog(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

var _ domain.ScenarioGenerationService = (*Generator)(nil)
