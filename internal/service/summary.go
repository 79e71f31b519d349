package service

import (
	"context"
	"fmt"

	"eldersafe/internal/domain"
	"eldersafe/internal/logger"

	"go.uber.org/zap"
)

// SummaryService turns a completed session's answer log into the input
// contract of the narrative summary backend and returns its feedback.
type SummaryService struct {
	sessions  *SessionService
	generator domain.SummaryGenerationService
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(sessions *SessionService, generator domain.SummaryGenerationService) *SummaryService {
	return &SummaryService{sessions: sessions, generator: generator}
}

// Summarize generates a personalized performance summary for a
// completed session. Sessions without a completed answer log are
// rejected; the computed score stays available even when the narrative
// backend fails.
func (s *SummaryService) Summarize(ctx context.Context, sessionID string) (*domain.PerformanceSummary, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Completed() || len(session.Answers) == 0 {
		return nil, domain.NewEmptyResultSetError(string(session.Kind))
	}

	input := BuildSummaryInput(session)

	logger.Get().Info("Generating performance summary",
		zap.String("session_id", sessionID),
		zap.String("kind", string(session.Kind)),
		zap.Int("score", input.Score))

	return s.generator.GenerateSummary(ctx, input)
}

// BuildSummaryInput converts a completed answer log into the summary
// backend's input: one action line per answer, one identified risk per
// malicious scenario, and the aggregate score.
func BuildSummaryInput(session *domain.QuizSession) domain.SummaryInput {
	result := domain.Aggregate(session.Answers)

	actions := make([]string, 0, len(session.Answers))
	var risks []domain.IdentifiedRisk
	for _, a := range session.Answers {
		verdict := "safe"
		if a.JudgedMalicious {
			verdict = "a scam"
		}
		prefix := "Incorrectly"
		if a.IsCorrect {
			prefix = "Correctly"
		}
		actions = append(actions, fmt.Sprintf("%s judged %s as %s.", prefix, a.Scenario.Describe(), verdict))

		if a.Scenario.IsMalicious {
			risks = append(risks, domain.IdentifiedRisk{
				Description:         a.Scenario.Describe(),
				CorrectlyIdentified: a.IsCorrect,
			})
		}
	}

	return domain.SummaryInput{
		ScenarioName:    session.Kind.DisplayName(),
		ActionsTaken:    actions,
		IdentifiedRisks: risks,
		Score:           result.Score,
	}
}
