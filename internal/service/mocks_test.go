package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"eldersafe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGenerator is a hand-rolled ScenarioGenerationService double.
type mockGenerator struct {
	mu        sync.Mutex
	scenarios []domain.Scenario
	err       error
	calls     int
	lastCount int
}

func (m *mockGenerator) GenerateScenarios(_ context.Context, kind domain.Kind, count int) ([]domain.Scenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastCount = count
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Scenario, len(m.scenarios))
	copy(out, m.scenarios)
	return out, nil
}

// mockSummaryGen is a hand-rolled SummaryGenerationService double.
type mockSummaryGen struct {
	summary *domain.PerformanceSummary
	err     error
	input   domain.SummaryInput
	calls   int
}

func (m *mockSummaryGen) GenerateSummary(_ context.Context, input domain.SummaryInput) (*domain.PerformanceSummary, error) {
	m.calls++
	m.input = input
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

// testScenarios returns n valid SMS scenarios with alternating labels
// and generator-style arbitrary IDs.
func testScenarios(n int) []domain.Scenario {
	scenarios := make([]domain.Scenario, 0, n)
	for i := 0; i < n; i++ {
		scenarios = append(scenarios, domain.Scenario{
			ID:          100 + i,
			Kind:        domain.KindSuspiciousSMS,
			SMS:         &domain.SMSMessage{Sender: fmt.Sprintf("sender-%d", i+1), Text: "hello there"},
			IsMalicious: i%2 == 0,
			Explanation: "because of the link",
		})
	}
	return scenarios
}

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}
