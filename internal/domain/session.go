package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// SessionState is the explicit state of a quiz session.
type SessionState string

const (
	// StateLoading means the scenario list is not yet available.
	StateLoading SessionState = "loading"
	// StateLive means the session awaits a judgment on the current unanswered scenario.
	StateLive SessionState = "live"
	// StateReviewing means the current step points at an already-answered scenario.
	StateReviewing SessionState = "reviewing"
	// StateComplete means all scenarios are answered; the answer log is frozen.
	StateComplete SessionState = "complete"
	// StateErrored means scenario loading failed; terminal, restart required.
	StateErrored SessionState = "errored"
)

// Answer records one user judgment against one scenario. Answers are
// created once, appended to the session log in step order, and never
// mutated afterwards.
type Answer struct {
	Scenario        Scenario  `json:"scenario"`
	JudgedMalicious bool      `json:"judgedMalicious"`
	IsCorrect       bool      `json:"isCorrect"`
	AnsweredAt      time.Time `json:"answeredAt"`
}

// Outcome is the immediate feedback emitted when a judgment is recorded.
type Outcome struct {
	Correct     bool   `json:"correct"`
	IsMalicious bool   `json:"isMalicious"`
	Explanation string `json:"explanation"`
}

// QuizSession drives one end-to-end quiz run over a fixed, shuffled
// scenario list. Invariant: CurrentStep <= len(Answers) always; the
// session is reviewing when CurrentStep < len(Answers) and live when
// they are equal.
type QuizSession struct {
	ID            string       `json:"id"`
	Kind          Kind         `json:"kind"`
	Scenarios     []Scenario   `json:"scenarios"`
	CurrentStep   int          `json:"currentStep"`
	Answers       []Answer     `json:"answers"`
	State         SessionState `json:"state"`
	FailureReason string       `json:"failureReason,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// NewQuizSession draws a uniform random permutation of the pool, caps it
// to maxSteps, and starts the session live at step 0. The order is fixed
// for the lifetime of the session; it never reshuffles.
func NewQuizSession(id string, kind Kind, pool []Scenario, maxSteps int) (*QuizSession, error) {
	if len(pool) == 0 {
		return nil, NewGenerationFailedError(fmt.Errorf("no scenarios available for %s", kind))
	}

	shuffled := make([]Scenario, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if maxSteps > 0 && len(shuffled) > maxSteps {
		shuffled = shuffled[:maxSteps]
	}

	return &QuizSession{
		ID:          id,
		Kind:        kind,
		Scenarios:   shuffled,
		CurrentStep: 0,
		Answers:     make([]Answer, 0, len(shuffled)),
		State:       StateLive,
		CreatedAt:   time.Now(),
	}, nil
}

// NewErroredSession records a terminal loading failure. The caller must
// start a new session to retry.
func NewErroredSession(id string, kind Kind, reason string) *QuizSession {
	return &QuizSession{
		ID:            id,
		Kind:          kind,
		State:         StateErrored,
		FailureReason: reason,
		CreatedAt:     time.Now(),
	}
}

// Current returns the scenario at the current step.
func (s *QuizSession) Current() (*Scenario, error) {
	if s.State == StateErrored {
		return nil, NewGenerationFailedError(fmt.Errorf("%s", s.FailureReason))
	}
	if s.CurrentStep >= len(s.Scenarios) {
		return nil, NewInvalidTransitionError("no current scenario")
	}
	return &s.Scenarios[s.CurrentStep], nil
}

// IsReviewing reports whether the current step re-visits an answered scenario.
func (s *QuizSession) IsReviewing() bool {
	return s.CurrentStep < len(s.Answers)
}

// Answer records a judgment for the scenario at the current step. Valid
// only while live on an unanswered step. The current step does not
// advance; the caller displays the returned outcome first.
func (s *QuizSession) Answer(judgedMalicious bool) (*Outcome, error) {
	if s.State != StateLive {
		return nil, NewInvalidTransitionError(fmt.Sprintf("cannot answer in state %s", s.State))
	}
	if s.IsReviewing() {
		return nil, NewInvalidTransitionError("current step is already answered")
	}
	if s.CurrentStep >= len(s.Scenarios) {
		return nil, NewInvalidTransitionError("no scenario left to answer")
	}

	scenario := s.Scenarios[s.CurrentStep]
	answer := Answer{
		Scenario:        scenario,
		JudgedMalicious: judgedMalicious,
		IsCorrect:       judgedMalicious == scenario.IsMalicious,
		AnsweredAt:      time.Now(),
	}
	s.Answers = append(s.Answers, answer)

	return &Outcome{
		Correct:     answer.IsCorrect,
		IsMalicious: scenario.IsMalicious,
		Explanation: scenario.Explanation,
	}, nil
}

// Advance moves to the next step. From inside review history it moves
// forward one step; on the last answered step it either enters live on
// the next unanswered scenario or, when everything is answered,
// transitions to the terminal complete state.
func (s *QuizSession) Advance() error {
	if s.State != StateLive && s.State != StateReviewing {
		return NewInvalidTransitionError(fmt.Sprintf("cannot advance in state %s", s.State))
	}
	if !s.IsReviewing() {
		return NewInvalidTransitionError("current step has not been answered")
	}

	if s.CurrentStep+1 < len(s.Answers) {
		// Still inside history.
		s.CurrentStep++
		s.State = StateReviewing
		return nil
	}

	if len(s.Answers) == len(s.Scenarios) {
		s.State = StateComplete
		return nil
	}

	s.CurrentStep++
	s.State = StateLive
	return nil
}

// GoTo jumps back to a previously answered step for read-only review.
// Jumping to or past the first unanswered step is rejected.
func (s *QuizSession) GoTo(step int) error {
	if s.State != StateLive && s.State != StateReviewing {
		return NewInvalidTransitionError(fmt.Sprintf("cannot review in state %s", s.State))
	}
	if step < 0 || step >= len(s.Answers) {
		return NewInvalidTransitionError(fmt.Sprintf("step %d has not been answered", step))
	}
	s.CurrentStep = step
	s.State = StateReviewing
	return nil
}

// AnswerAt returns the recorded answer for an answered step.
func (s *QuizSession) AnswerAt(step int) (*Answer, error) {
	if step < 0 || step >= len(s.Answers) {
		return nil, NewInvalidTransitionError(fmt.Sprintf("step %d has not been answered", step))
	}
	return &s.Answers[step], nil
}

// Completed reports whether the session reached its terminal complete state.
func (s *QuizSession) Completed() bool {
	return s.State == StateComplete
}
