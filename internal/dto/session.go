package dto

import "eldersafe/internal/domain"

// StartSessionRequest starts a quiz session for a scenario kind.
// Count is optional; zero means the configured default. ClientID is an
// optional caller-chosen identifier that scopes the scenario pool
// cache, so repeat starts by the same client reuse the pool.
type StartSessionRequest struct {
	Kind     string `json:"kind"`
	Count    int    `json:"count,omitempty"`
	ClientID string `json:"clientId,omitempty"`
}

// AnswerRequest records a scam/safe judgment on the current scenario.
// IsMalicious is a pointer so a missing field is distinguishable from false.
type AnswerRequest struct {
	IsMalicious *bool `json:"isMalicious"`
}

// StepRequest jumps back to an answered step for review.
type StepRequest struct {
	Step *int `json:"step"`
}

// GuidanceRequest asks a free-form internet safety question.
type GuidanceRequest struct {
	Question string `json:"question"`
}

// AnswerView is the recorded judgment shown while reviewing a step.
type AnswerView struct {
	JudgedMalicious bool   `json:"judgedMalicious"`
	IsCorrect       bool   `json:"isCorrect"`
	Explanation     string `json:"explanation"`
}

// SessionView is the client's window into a session: the current step,
// its scenario, and (when reviewing) the answer already recorded there.
type SessionView struct {
	SessionID     string           `json:"sessionId"`
	Kind          string           `json:"kind"`
	State         string           `json:"state"`
	Step          int              `json:"step"`
	TotalSteps    int              `json:"totalSteps"`
	AnsweredCount int              `json:"answeredCount"`
	Scenario      *domain.Scenario `json:"scenario,omitempty"`
	Answer        *AnswerView      `json:"answer,omitempty"`
	FailureReason string           `json:"failureReason,omitempty"`
}

// NewSessionView projects a session onto its client view. Completed and
// errored sessions carry no scenario.
func NewSessionView(s *domain.QuizSession) SessionView {
	view := SessionView{
		SessionID:     s.ID,
		Kind:          string(s.Kind),
		State:         string(s.State),
		Step:          s.CurrentStep,
		TotalSteps:    len(s.Scenarios),
		AnsweredCount: len(s.Answers),
		FailureReason: s.FailureReason,
	}

	if s.State == domain.StateLive || s.State == domain.StateReviewing {
		if scenario, err := s.Current(); err == nil {
			view.Scenario = scenario
		}
	}
	if s.State == domain.StateReviewing {
		if answer, err := s.AnswerAt(s.CurrentStep); err == nil {
			view.Answer = &AnswerView{
				JudgedMalicious: answer.JudgedMalicious,
				IsCorrect:       answer.IsCorrect,
				Explanation:     answer.Scenario.Explanation,
			}
		}
	}
	return view
}

// OutcomeResponse is the immediate feedback after a judgment.
type OutcomeResponse struct {
	Correct     bool   `json:"correct"`
	GroundTruth bool   `json:"groundTruth"`
	Explanation string `json:"explanation"`
}

// GuidanceResponse carries one safety tip.
type GuidanceResponse struct {
	Tip string `json:"tip"`
}

// KindView describes one supported scenario kind.
type KindView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ErrorResponse is the minimal error shape handlers emit directly.
type ErrorResponse struct {
	Error string `json:"error"`
}
