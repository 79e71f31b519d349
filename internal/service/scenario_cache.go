package service

import (
	"context"
	"encoding/json"
	"time"

	"eldersafe/internal/cache"
	"eldersafe/internal/domain"
	"eldersafe/internal/logger"

	"go.uber.org/zap"
)

// ScenarioCacheService stores generated scenario pools per client scope
// and kind, so repeat starts within the TTL never trigger regeneration.
type ScenarioCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewScenarioCacheService creates a new ScenarioCacheService.
func NewScenarioCacheService(c domain.Cache, ttl time.Duration) *ScenarioCacheService {
	return &ScenarioCacheService{cache: c, ttl: ttl}
}

// Get returns the cached scenario pool for the scope and kind.
// A corrupt entry is invalidated and reported as a miss so the caller
// regenerates; the user never sees the corruption.
func (s *ScenarioCacheService) Get(ctx context.Context, scope string, kind domain.Kind) ([]domain.Scenario, error) {
	key := cache.ScenariosKey(scope, string(kind))

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var scenarios []domain.Scenario
	if err := json.Unmarshal([]byte(raw), &scenarios); err != nil {
		logger.Get().Warn("Invalidating corrupt scenario cache entry",
			zap.String("key", key), zap.Error(err))
		if delErr := s.cache.Delete(ctx, key); delErr != nil {
			logger.Get().Error("Failed to delete corrupt cache entry", zap.String("key", key), zap.Error(delErr))
		}
		return nil, domain.ErrCacheMiss
	}
	return scenarios, nil
}

// Put stores the scenario pool for the scope and kind.
func (s *ScenarioCacheService) Put(ctx context.Context, scope string, kind domain.Kind, scenarios []domain.Scenario) error {
	data, err := json.Marshal(scenarios)
	if err != nil {
		return domain.NewInternalError("failed to marshal scenarios", err)
	}
	return s.cache.Set(ctx, cache.ScenariosKey(scope, string(kind)), string(data), s.ttl)
}

// Invalidate removes the cached pool for the scope and kind.
func (s *ScenarioCacheService) Invalidate(ctx context.Context, scope string, kind domain.Kind) error {
	return s.cache.Delete(ctx, cache.ScenariosKey(scope, string(kind)))
}
