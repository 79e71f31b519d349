package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"eldersafe/internal/cache"
	"eldersafe/internal/config"
	"eldersafe/internal/domain"
	"eldersafe/internal/logger"
	"eldersafe/internal/util"

	"go.uber.org/zap"
)

// SessionService owns the quiz session lifecycle: it generates (or
// reuses) a scenario pool, drives the session state machine, and
// persists every transition so any instance can serve any request.
type SessionService struct {
	cacheAdapter  domain.Cache
	generator     domain.ScenarioGenerationService
	scenarioCache *ScenarioCacheService
	quizCfg       config.QuizConfig
	genTimeout    time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	cacheAdapter domain.Cache,
	generator domain.ScenarioGenerationService,
	scenarioCache *ScenarioCacheService,
	quizCfg config.QuizConfig,
	genTimeout time.Duration,
) *SessionService {
	return &SessionService{
		cacheAdapter:  cacheAdapter,
		generator:     generator,
		scenarioCache: scenarioCache,
		quizCfg:       quizCfg,
		genTimeout:    genTimeout,
	}
}

// sharedScope pools scenarios for clients that send no identifier.
const sharedScope = "shared"

// Start creates a new quiz session for the given kind. The scenario
// pool is cached per client scope and kind, so repeat starts within the
// TTL reuse it instead of re-invoking the generator; count only applies
// when a fresh pool is generated. A generation failure still yields a
// persisted session in the errored state so the client can observe what
// happened; the caller starts a fresh session to retry.
func (s *SessionService) Start(ctx context.Context, kind domain.Kind, count int, clientID string) (*domain.QuizSession, error) {
	if !kind.Valid() {
		return nil, domain.NewInvalidKindError(string(kind))
	}
	if count <= 0 {
		count = s.quizCfg.DefaultCount
	}
	scope := strings.TrimSpace(clientID)
	if scope == "" {
		scope = sharedScope
	}

	sessionID := util.NewULID()
	l := logger.Get()

	pool, err := s.scenarioCache.Get(ctx, scope, kind)
	if err == nil {
		l.Info("Reusing cached scenario pool",
			zap.String("scope", scope), zap.String("kind", string(kind)))
	} else {
		if !errors.Is(err, domain.ErrCacheMiss) {
			l.Warn("Scenario cache lookup failed, regenerating",
				zap.String("scope", scope), zap.Error(err))
		}

		genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
		pool, err = s.generator.GenerateScenarios(genCtx, kind, count)
		cancel()
		if err != nil {
			l.Error("Scenario generation failed, creating errored session",
				zap.String("session_id", sessionID),
				zap.String("kind", string(kind)),
				zap.Error(err))
			session := domain.NewErroredSession(sessionID, kind, err.Error())
			if saveErr := s.saveSession(ctx, session); saveErr != nil {
				return nil, saveErr
			}
			return session, nil
		}

		pool = domain.NormalizeScenarios(pool)
		if cacheErr := s.scenarioCache.Put(ctx, scope, kind, pool); cacheErr != nil {
			l.Warn("Failed to cache scenario pool",
				zap.String("scope", scope), zap.Error(cacheErr))
		}
	}

	session, err := domain.NewQuizSession(sessionID, kind, pool, s.quizCfg.MaxSteps)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	l.Info("Quiz session started",
		zap.String("session_id", sessionID),
		zap.String("kind", string(kind)),
		zap.Int("steps", len(session.Scenarios)))
	return session, nil
}

// Get loads a session by ID.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	return s.loadSession(ctx, sessionID)
}

// Answer records a judgment on the current scenario and persists the
// session. The returned outcome carries the immediate feedback.
func (s *SessionService) Answer(ctx context.Context, sessionID string, judgedMalicious bool) (*domain.Outcome, *domain.QuizSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	outcome, err := session.Answer(judgedMalicious)
	if err != nil {
		return nil, nil, err
	}
	if err := s.saveExisting(ctx, session); err != nil {
		return nil, nil, err
	}
	return outcome, session, nil
}

// Advance moves the session to its next step. When the session
// completes, the aggregated result is persisted alongside it.
func (s *SessionService) Advance(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Advance(); err != nil {
		return nil, err
	}
	if err := s.saveExisting(ctx, session); err != nil {
		return nil, err
	}
	if session.Completed() {
		if err := s.saveResults(ctx, session); err != nil {
			logger.Get().Error("Failed to persist session results",
				zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	return session, nil
}

// GoTo jumps the session back to a previously answered step for review.
func (s *SessionService) GoTo(ctx context.Context, sessionID string, step int) (*domain.QuizSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.GoTo(step); err != nil {
		return nil, err
	}
	if err := s.saveExisting(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Results returns the aggregated performance of a completed session.
// Aggregation is idempotent, so a cache miss on the stored result is
// recovered by recomputing from the answer log.
func (s *SessionService) Results(ctx context.Context, sessionID string) (*domain.PerformanceResult, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Completed() {
		return nil, domain.NewEmptyResultSetError(string(session.Kind))
	}

	key := cache.ResultsKey(sessionID, string(session.Kind))
	if raw, err := s.cacheAdapter.Get(ctx, key); err == nil {
		var result domain.PerformanceResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			return &result, nil
		}
		logger.Get().Warn("Invalidating corrupt results entry", zap.String("key", key))
		_ = s.cacheAdapter.Delete(ctx, key)
	}

	result := domain.Aggregate(session.Answers)
	if err := s.saveResults(ctx, session); err != nil {
		logger.Get().Warn("Failed to re-persist results", zap.String("session_id", sessionID), zap.Error(err))
	}
	return &result, nil
}

func (s *SessionService) saveSession(ctx context.Context, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}
	if err := s.cacheAdapter.Set(ctx, cache.SessionKey(session.ID), string(data), s.quizCfg.SessionTTL); err != nil {
		return domain.NewInternalError("failed to persist session", err)
	}
	return nil
}

// saveExisting commits a state transition only while the session entry
// is still live. A session that expires between load and commit stays
// expired instead of being resurrected with a fresh TTL.
func (s *SessionService) saveExisting(ctx context.Context, session *domain.QuizSession) error {
	if _, err := s.cacheAdapter.Get(ctx, cache.SessionKey(session.ID)); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.NewSessionNotFoundError(session.ID)
		}
		return domain.NewInternalError("failed to verify session", err)
	}
	return s.saveSession(ctx, session)
}

func (s *SessionService) loadSession(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	raw, err := s.cacheAdapter.Get(ctx, cache.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("failed to load session", err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		logger.Get().Warn("Invalidating corrupt session entry",
			zap.String("session_id", sessionID), zap.Error(err))
		_ = s.cacheAdapter.Delete(ctx, cache.SessionKey(sessionID))
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return &session, nil
}

func (s *SessionService) saveResults(ctx context.Context, session *domain.QuizSession) error {
	result := domain.Aggregate(session.Answers)
	data, err := json.Marshal(result)
	if err != nil {
		return domain.NewInternalError("failed to marshal results", err)
	}
	key := cache.ResultsKey(session.ID, string(session.Kind))
	return s.cacheAdapter.Set(ctx, key, string(data), s.quizCfg.SessionTTL)
}
