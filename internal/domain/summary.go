package domain

import "context"

// IdentifiedRisk pairs one malicious scenario with whether the user
// correctly flagged it.
type IdentifiedRisk struct {
	Description         string `json:"description"`
	CorrectlyIdentified bool   `json:"correctlyIdentified"`
}

// SummaryInput is the input contract of the narrative summary backend.
type SummaryInput struct {
	ScenarioName    string           `json:"scenarioName"`
	ActionsTaken    []string         `json:"actionsTaken"`
	IdentifiedRisks []IdentifiedRisk `json:"identifiedRisks"`
	Score           int              `json:"score"`
}

// PerformanceSummary is the structured narrative feedback for one
// completed quiz run.
type PerformanceSummary struct {
	OverallSummary      string   `json:"overallSummary"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
}

// SummaryGenerationService defines the interface for the external
// narrative-summary generator.
type SummaryGenerationService interface {
	GenerateSummary(ctx context.Context, input SummaryInput) (*PerformanceSummary, error)
}

// GuidanceService answers free-form internet-safety questions with a
// short practical tip.
type GuidanceService interface {
	GetGuidance(ctx context.Context, question string) (string, error)
}
