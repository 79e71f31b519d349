package summarygen

import (
	"context"
	"fmt"
	"strings"

	"eldersafe/internal/adapter/llm"
	"eldersafe/internal/domain"
	"eldersafe/internal/logger"

	"go.uber.org/zap"
)

// GuidanceTool implements domain.GuidanceService: it answers a free-form
// internet-safety question with one short, practical tip.
type GuidanceTool struct {
	client llm.Client
}

// NewGuidanceTool creates a new GuidanceTool.
func NewGuidanceTool(client llm.Client) *GuidanceTool {
	return &GuidanceTool{client: client}
}

// GetGuidance implements domain.GuidanceService.
func (g *GuidanceTool) GetGuidance(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.NewInvalidInputError("question is required")
	}

	prompt := fmt.Sprintf(`You are a friendly internet safety advisor for elderly users. Answer the question below with one short, practical safety tip in plain language. Two to four sentences, no lists, no technical jargon.

Question: %s`, question)

	tip, err := g.client.Complete(ctx, prompt)
	if err != nil {
		logger.Get().Error("Guidance backend call failed", zap.Error(err))
		return "", domain.NewSummaryFailedError(err)
	}

	tip = strings.TrimSpace(tip)
	if thinkStart := strings.Index(tip, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(tip, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			tip = strings.TrimSpace(tip[:thinkStart] + tip[thinkEnd+len("</think>"):])
		}
	}
	if tip == "" {
		return "", domain.NewSummaryFailedError(fmt.Errorf("guidance backend returned empty tip"))
	}
	return tip, nil
}

var _ domain.GuidanceService = (*GuidanceTool)(nil)
