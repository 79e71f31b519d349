package summarygen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"eldersafe/internal/adapter/llm"
	"eldersafe/internal/domain"
	"eldersafe/internal/logger"

	"go.uber.org/zap"
)

// Summarizer implements domain.SummaryGenerationService on top of a
// text-generation client.
type Summarizer struct {
	client llm.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// GenerateSummary translates the aggregated quiz results into a prompt for
// the narrative backend and parses its structured reply.
func (s *Summarizer) GenerateSummary(ctx context.Context, input domain.SummaryInput) (*domain.PerformanceSummary, error) {
	prompt := buildSummaryPrompt(input)

	l := logger.Get()
	l.Info("Requesting performance summary",
		zap.String("scenario_name", input.ScenarioName),
		zap.Int("score", input.Score),
		zap.Int("actions", len(input.ActionsTaken)))

	raw, err := s.client.Complete(ctx, prompt)
	if err != nil {
		l.Error("Summary backend call failed", zap.Error(err))
		return nil, domain.NewSummaryFailedError(err)
	}

	summary, err := parseSummary(raw)
	if err != nil {
		l.Error("Failed to parse summary response", zap.Error(err))
		return nil, domain.NewSummaryFailedError(err)
	}
	return summary, nil
}

func buildSummaryPrompt(input domain.SummaryInput) string {
	var b strings.Builder
	b.WriteString(`You are an AI-powered guidance tool for an internet safety training app for elderly users. Provide a personalized, constructive performance summary to a user who has completed a simulation. The summary should be in plain language, highlight strengths, and offer actionable advice for improvement.

The user completed the following simulation:
`)
	fmt.Fprintf(&b, "Scenario: %s\nOverall Score: %d%%\n\nUser Actions Log:\n", input.ScenarioName, input.Score)
	for _, action := range input.ActionsTaken {
		fmt.Fprintf(&b, "- %s\n", action)
	}
	if len(input.IdentifiedRisks) > 0 {
		b.WriteString("\nIdentified Risks:\n")
		for _, risk := range input.IdentifiedRisks {
			identified := "No"
			if risk.CorrectlyIdentified {
				identified = "Yes"
			}
			fmt.Fprintf(&b, "- Risk: %q, Correctly Identified: %s\n", risk.Description, identified)
		}
	}
	b.WriteString(`
Based on this information, respond with ONLY a JSON object with these fields:
- "overallSummary": a brief, general overview of their performance, as a single string.
- "strengths": an array of strings listing 2-3 specific actions or decisions where the user demonstrated good judgment or understanding.
- "areasForImprovement": an array of strings listing 2-3 specific areas where the user could improve, each with clear, actionable advice or a tip.

Ensure the language is encouraging and supportive, focusing on learning and growth.`)
	return b.String()
}

func parseSummary(raw string) (*domain.PerformanceSummary, error) {
	cleaned := strings.TrimSpace(raw)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("no JSON object found in summary response")
	}

	var summary domain.PerformanceSummary
	if err := json.Unmarshal([]byte(cleaned[jsonStart:jsonEnd+1]), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	if summary.OverallSummary == "" {
		return nil, fmt.Errorf("summary response is missing overallSummary")
	}
	return &summary, nil
}

var _ domain.SummaryGenerationService = (*Summarizer)(nil)
