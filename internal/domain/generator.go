package domain

import "context"

// ScenarioGenerationService defines the interface for producing a batch of
// quiz scenarios of one kind from a generative backend. Returned scenarios
// are schema-valid but not yet normalized; IDs must not be trusted.
type ScenarioGenerationService interface {
	GenerateScenarios(ctx context.Context, kind Kind, count int) ([]Scenario, error)
}
